package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FridgeController struct {
	svc *services.FridgeService
}

func NewFridgeController(svc *services.FridgeService) *FridgeController {
	return &FridgeController{svc: svc}
}

type AddItemInput struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

func (ctl *FridgeController) ViewFridge(c *gin.Context) {
	view, err := ctl.svc.ViewFridge(currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (ctl *FridgeController) AddItem(c *gin.Context) {
	var input AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	item, err := ctl.svc.AddItem(currentUser(c), input.Name, quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (ctl *FridgeController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if err := ctl.svc.RemoveItem(currentUser(c), uint(id)); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ctl *FridgeController) ClearFridge(c *gin.Context) {
	if err := ctl.svc.ClearFridge(currentUser(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fridge cleared successfully"})
}
