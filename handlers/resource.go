package handlers

import (
	"net/http"
	"reflect"
	"strconv"

	"bitbucket.org/lodgefocus/hotelops_backend/models"
	"bitbucket.org/lodgefocus/hotelops_backend/query"
	"bitbucket.org/lodgefocus/hotelops_backend/utils"
	"github.com/gin-gonic/gin"
)

// Resource exposes the generic persistence service over REST. One instance
// per entity; filterable fields are whitelisted per route.
type Resource[T query.Identifier] struct {
	service       *query.Service[T]
	allowedFields []string
}

func NewResource[T query.Identifier](allowedFields []string) *Resource[T] {
	return &Resource[T]{
		service:       query.NewService[T](nil, query.DefaultPolicy()),
		allowedFields: allowedFields,
	}
}

func (h *Resource[T]) Register(rg *gin.RouterGroup, path string) {
	rg.GET("/"+path, h.List)
	rg.POST("/"+path, h.Create)
	rg.GET("/"+path+"/:id", h.Get)
	rg.PATCH("/"+path+"/:id", h.Update)
	rg.DELETE("/"+path+"/:id", h.Delete)
}

func (h *Resource[T]) List(c *gin.Context) {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	filters := query.ParseFromQueryParams(params, h.allowedFields)

	rows, total, err := h.service.List(c.Request.Context(), filters, page, limit)
	if err != nil {
		RespondError(c, "resource.go", "List", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows, "total": total, "page": page})
}

func (h *Resource[T]) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	row, err := h.service.GetById(c.Request.Context(), id)
	if err != nil {
		RespondError(c, "resource.go", "Get", err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Resource[T]) Create(c *gin.Context) {
	var row T
	if err := c.ShouldBindJSON(&row); err != nil {
		RespondError(c, "resource.go", "Create", err)
		return
	}
	if businessId, ok := utils.GetBusinessIdFromContext(c.Request.Context()); ok {
		stampBusinessId(&row, businessId)
	}
	created, err := h.service.Create(c.Request.Context(), &row)
	if err != nil {
		RespondError(c, "resource.go", "Create", err)
		return
	}
	h.dropCache(c, (*created).GetId())
	c.JSON(http.StatusCreated, created)
}

func (h *Resource[T]) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var partial map[string]interface{}
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// tenant identity is never client-writable
	delete(partial, "business_id")
	delete(partial, "id")

	row, err := h.service.UpdateById(c.Request.Context(), id, partial)
	if err != nil {
		RespondError(c, "resource.go", "Update", err)
		return
	}
	h.dropCache(c, id)
	c.JSON(http.StatusOK, row)
}

func (h *Resource[T]) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.DeleteById(c.Request.Context(), id); err != nil {
		RespondError(c, "resource.go", "Delete", err)
		return
	}
	h.dropCache(c, id)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// mutations go around the cached readers, so stale entries must go
func (h *Resource[T]) dropCache(c *gin.Context, id int) {
	if businessId, ok := utils.GetBusinessIdFromContext(c.Request.Context()); ok {
		_ = models.RemoveResourceCache[T](businessId, id)
	}
}

// stampBusinessId sets the BusinessId field when the model carries one.
func stampBusinessId(row interface{}, businessId string) {
	v := reflect.ValueOf(row).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	f := v.FieldByName("BusinessId")
	if f.IsValid() && f.Kind() == reflect.String && f.CanSet() {
		f.SetString(businessId)
	}
}
