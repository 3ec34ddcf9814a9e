package controllers

import (
	"io"
	"strconv"

	"github.com/YibestBelay/shegaCafe/pkg/imagestore"
	"github.com/YibestBelay/shegaCafe/pkg/resp"
	"github.com/YibestBelay/shegaCafe/services"
	"github.com/YibestBelay/shegaCafe/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu   *services.MenuService
	Images imagestore.Store
}

func NewMenuController(menu *services.MenuService, images imagestore.Store) *MenuController {
	return &MenuController{Menu: menu, Images: images}
}

// GET /menu. Staff see everything, everyone else only available items.
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Menu.List(utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Menu.Get(utils.CurrentRole(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.Create(utils.CurrentRole(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menu.Update(utils.CurrentRole(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu/:id/availability
func (ctl *MenuController) ToggleAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Menu.ToggleAvailability(utils.CurrentRole(c), uint(id), *req.IsAvailable); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu availability updated"})
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Menu.Delete(utils.CurrentRole(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// POST /menu/images takes a multipart upload and returns {url, id} for
// the create and edit forms.
func (ctl *MenuController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	img, err := ctl.Images.Upload(data, fh.Header.Get("Content-Type"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, img)
}
