package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewFridgeCreatesDefaultLazily(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	view, err := svc.ViewFridge(user)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultFridgeName, view.Name)
	assert.Empty(t, view.Items)
	assert.NotNil(t, view.Items)

	again, err := svc.ViewFridge(user)
	require.NoError(t, err)
	assert.Equal(t, view.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Fridge{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddItemMergesCaseInsensitively(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	first, err := svc.AddItem(user, "Milk", 2)
	require.NoError(t, err)
	assert.Equal(t, "Milk", first.Name)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.AddItem(user, "MILK", 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)
	// display name keeps the first-inserted casing
	assert.Equal(t, "Milk", second.Name)

	view, err := svc.ViewFridge(user)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	var validationErr *ValidationError

	_, err := svc.AddItem(user, "", 1)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.AddItem(user, "   ", 1)
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.AddItem(user, "Milk", 0)
	require.ErrorAs(t, err, &validationErr)
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	item, err := svc.AddItem(user, "Cheese", 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(user, item.ID))

	view, err := svc.ViewFridge(user)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, svc.RemoveItem(user, item.ID), &notFoundErr)
}

func TestRemoveItemIsOwnershipScoped(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	owner := registerTestUser(t, auth, "owner@x.com")
	intruder := registerTestUser(t, auth, "intruder@x.com")

	item, err := svc.AddItem(owner, "Eggs", 12)
	require.NoError(t, err)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, svc.RemoveItem(intruder, item.ID), &notFoundErr)

	// owner's item survives the attempt
	view, err := svc.ViewFridge(owner)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Eggs", view.Items[0].Name)
}

func TestClearFridge(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	_, err := svc.AddItem(user, "Eggs", 12)
	require.NoError(t, err)
	_, err = svc.AddItem(user, "Bread", 1)
	require.NoError(t, err)

	require.NoError(t, svc.ClearFridge(user))

	view, err := svc.ViewFridge(user)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// re-adding a cleared name starts from scratch
	item, err := svc.AddItem(user, "Eggs", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, item.Quantity)
}

func TestClearFridgeWithoutFridgeIsNoOp(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	require.NoError(t, svc.ClearFridge(user))

	var count int64
	require.NoError(t, db.Model(&models.FridgeItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestItemNames(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestLogger())
	svc := NewFridgeService(db, newTestLogger())
	user := registerTestUser(t, auth, "a@x.com")

	names, err := svc.ItemNames(user)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = svc.AddItem(user, "Milk", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(user, "Eggs", 2)
	require.NoError(t, err)

	names, err = svc.ItemNames(user)
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk", "Eggs"}, names)
}
