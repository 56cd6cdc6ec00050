package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"sekor-bkc/pkg/apperror"
	"sekor-bkc/pkg/middleware"
	"sekor-bkc/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Per-resource pagination limits.
var (
	articlePageOptions = pagination.Options{
		DefaultPerPage: 20,
		MaxPerPage:     100,
		AllowedSorts:   []string{"createdAt", "publishedAt", "views", "title"},
	}
	storyPageOptions = pagination.Options{
		DefaultPerPage: 10,
		MaxPerPage:     100,
		AllowedSorts:   []string{"createdAt", "updatedAt", "publishedAt", "viewCount", "reactionCount"},
	}
	myStoryPageOptions = pagination.Options{
		DefaultPerPage: 10,
		MaxPerPage:     100,
		DefaultSort:    "updatedAt",
		AllowedSorts:   storyPageOptions.AllowedSorts,
	}
	authorPageOptions = pagination.Options{
		DefaultPerPage: 20,
		MaxPerPage:     100,
		AllowedSorts:   []string{"createdAt", "name"},
	}
	followingPageOptions = pagination.Options{
		DefaultPerPage: 20,
		MaxPerPage:     100,
		DefaultSort:    "followedAt",
		AllowedSorts:   []string{"followedAt", "name"},
	}
	mediaPageOptions = pagination.Options{
		DefaultPerPage: 20,
		MaxPerPage:     50,
		AllowedSorts:   []string{"createdAt", "size", "usageCount"},
	}
	commentPageOptions = pagination.Options{
		DefaultPerPage: 20,
		MaxPerPage:     100,
		AllowedSorts:   []string{"createdAt"},
	}
)

func init() {
	// Report binding failures under the json (or form) field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// bindJSON decodes the body into req and turns binding failures into
// validation errors.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]apperror.FieldIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, apperror.FieldIssue{Field: fe.Field(), Issue: describe(fe)})
		}
		return apperror.Validation("Validation failed", issues...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.Validation("Validation failed", apperror.FieldIssue{
			Field: typeErr.Field,
			Issue: fmt.Sprintf("must be of type %s", typeErr.Type),
		})
	}
	if errors.Is(err, io.EOF) {
		return apperror.Validation("Request body is required")
	}
	return apperror.Validation("Malformed request body")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid id"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

func parsePage(c *gin.Context, opts pagination.Options) (pagination.Params, error) {
	return pagination.Parse(c.Request.URL.Query(), opts)
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// visitorKey identifies a reader for unique-visitor counting.
func visitorKey(c *gin.Context) string {
	if userID := currentUserID(c); userID != "" {
		return userID
	}
	return "ip:" + c.ClientIP()
}

func invalidFilter(field, issue string) error {
	return apperror.Validation("Invalid filter", apperror.FieldIssue{Field: field, Issue: issue})
}
