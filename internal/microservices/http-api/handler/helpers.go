package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TotalCountHeader carries the unpaginated total of list endpoints.
const TotalCountHeader = "X-Total-Count"

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.BadRequest(bindingMessage(err)).Wrap(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		_ = c.Error(apperrors.BadRequest(bindingMessage(err)).Wrap(err))
		return false
	}
	return true
}

func setTotal(c *gin.Context, total int64) {
	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
}

// bindingMessage turns a bind failure into something a client can act on.
// Only the first failing field is reported.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", field)
		case "min", "gte":
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "max", "lte":
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		case "role":
			return fmt.Sprintf("%s must be one of creator, brand", field)
		case "requirement_status":
			return fmt.Sprintf("%s must be one of open, paused, closed", field)
		case "platform":
			return fmt.Sprintf("%s must be one of instagram, tiktok, youtube, twitter", field)
		case "campaign_decision":
			return fmt.Sprintf("%s must be accepted or declined", field)
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}

	var amountErr *dto.AmountError
	if errors.As(err, &amountErr) {
		return amountErr.Error()
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("%s must be a valid %s", typeErr.Field, typeErr.Type)
		}
		return "request body has the wrong shape"
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Sprintf("invalid number %q", numErr.Num)
	}

	var syntaxErr *json.SyntaxError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
		return "request body must be valid JSON"
	}
	return "invalid request"
}
