package common

import (
	"github.com/findy-network/findy-agent-toolbox/agent/utils"
	"github.com/go-playground/validator/v10"
)

// SeedLen is the length of a DID seed.
const SeedLen = 32

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("verkey", func(fl validator.FieldLevel) bool {
		return utils.ValidVerkey(fl.Field().String())
	})
	_ = v.RegisterValidation("seed", func(fl validator.FieldLevel) bool {
		l := len(fl.Field().String())
		return l == 0 || l == SeedLen
	})
	return v
}

// Validate checks the validate tags of the message struct. Besides the
// validator's own tags there are:
//
//	verkey: base58 encoded ed25519 public key
//	seed:   empty or 32 characters
func Validate(m any) error {
	return validate.Struct(m)
}
