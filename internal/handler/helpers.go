package handler

import (
	"net/http"
	"reflect"

	"github.com/Italzenergy/AlzConnect-app/internal/apierror"
	"github.com/Italzenergy/AlzConnect-app/internal/authz"
	"github.com/Italzenergy/AlzConnect-app/internal/domerr"
	"github.com/Italzenergy/AlzConnect-app/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQuery binds query string filters and validates their tags.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parametros invalidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(filter); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError renders a service error. Domain errors map to their HTTP
// status; anything unknown is pushed to the error middleware for logging
// and rendered as an opaque 500.
func respondError(c *gin.Context, err error) {
	if domerr.KindOf(err) == domerr.KindUnknown {
		_ = c.Error(err)
		return
	}
	status, resp := apierror.FromDomain(err)
	c.JSON(status, resp)
}

// caller extracts the per-call identity set by the JWT middleware.
func caller(c *gin.Context) authz.Caller {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return authz.Caller{}
	}
	return middleware.CallerFrom(claims)
}

// parseID parses the :id path parameter; writes a 422 when malformed.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("id invalido"))
		return uuid.Nil, false
	}
	return id, true
}
