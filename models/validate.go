package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all payload models; validator instances cache struct
// metadata so a single one is reused across requests.
var validate = validator.New()

// ErrEmptyUpdate is returned by partial-update payloads that carry no fields
var ErrEmptyUpdate = errors.New("at least one field must be provided for update")
