package v4

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twigs-app/backend/internal/httputil"
	"github.com/twigs-app/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// defaultLimit is the page size for collection endpoints without a limit parameter.
const defaultLimit = 50

type resource interface {
	models.Budget | models.Category | models.Transaction
}

// editable is the API representation of the user configurable fields of R.
type editable[R resource] interface {
	model() R
}

// created is the outcome of creating a single resource.
type created[R resource] struct {
	resource R
	err      error
}

// fail writes the error response for err.
func fail(c *gin.Context, err error) {
	c.JSON(status(err), httpError{
		Error: err.Error(),
	})
}

// find reads the resource identified by the ID in the URI. If it returns
// false, the error response has been written.
func find[R resource](c *gin.Context) (R, bool) {
	var resource R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return resource, false
	}

	err = models.DB.First(&resource, "id = ?", uri.ID).Error
	if err != nil {
		fail(c, err)
		return resource, false
	}

	return resource, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context) {
	if _, ok := find[R](c); ok {
		httputil.OptionsGetPatchDelete(c)
	}
}

// createResources stores every resource of the request body separately.
//
// The returned status is the highest status code of all single results.
// If it returns false, the error response has been written.
func createResources[R resource, E editable[R]](c *gin.Context) ([]created[R], int, bool) {
	var editables []E
	err := httputil.BindData(c, &editables)
	if err != nil {
		fail(c, err)
		return nil, 0, false
	}

	code := http.StatusCreated
	results := make([]created[R], 0, len(editables))
	for _, e := range editables {
		resource := e.model()

		err := models.DB.Create(&resource).Error
		if err != nil {
			code = max(code, status(err))
		}

		results = append(results, created[R]{resource: resource, err: err})
	}

	return results, code, true
}

// updateResource applies the fields that are set in the request body to the
// resource identified by the URI. It returns the resource before and after
// the update. If it returns false, the error response has been written.
func updateResource[R resource, E editable[R]](c *gin.Context) (R, R, bool) {
	var updated R

	previous, ok := find[R](c)
	if !ok {
		return previous, updated, false
	}

	var data E
	updateFields, err := httputil.GetBodyFields(c, data)
	if err != nil {
		fail(c, err)
		return previous, updated, false
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		fail(c, err)
		return previous, updated, false
	}

	updated = previous
	err = models.DB.Model(&updated).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		fail(c, err)
		return previous, updated, false
	}

	return previous, updated, true
}

// deleteResource deletes the resource identified by the URI and returns it.
// If it returns false, the error response has been written.
func deleteResource[R resource](c *gin.Context) (R, bool) {
	resource, ok := find[R](c)
	if !ok {
		return resource, false
	}

	err := models.DB.Delete(&resource).Error
	if err != nil {
		fail(c, err)
		return resource, false
	}

	c.JSON(http.StatusNoContent, nil)
	return resource, true
}

// listResources reads one page of the resources matching q and converts them
// to their API representation.
func listResources[R resource, A any](c *gin.Context, q *gorm.DB, setFields []string, offset uint, limit int, convert func(*gin.Context, R) A) ([]A, *Pagination, error) {
	if !slices.Contains(setFields, "Limit") {
		limit = defaultLimit
	}

	q = q.Offset(int(offset)).Limit(limit)

	var resources []R
	err := q.Find(&resources).Error
	if err != nil {
		return nil, nil, err
	}

	var total int64
	err = q.Limit(-1).Offset(-1).Count(&total).Error
	if err != nil {
		return nil, nil, err
	}

	data := make([]A, 0, len(resources))
	for _, resource := range resources {
		data = append(data, convert(c, resource))
	}

	return data, &Pagination{
		Count:  len(data),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}
