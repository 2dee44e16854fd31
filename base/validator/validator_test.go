package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestValidate() {
	type bidRequest struct {
		Amount int64 `validate:"required,gt=0"`
		Limit  int32 `validate:"lte=100"`
	}

	v := NewCustomValidator(validator.New())

	tests := []struct {
		desc     string
		req      bidRequest
		expValid bool
	}{
		{
			desc:     "missing amount",
			req:      bidRequest{Limit: 20},
			expValid: false,
		},
		{
			desc:     "limit above bound",
			req:      bidRequest{Amount: 1_000_00, Limit: 500},
			expValid: false,
		},
		{
			desc:     "valid request",
			req:      bidRequest{Amount: 1_000_00, Limit: 20},
			expValid: true,
		},
	}

	for _, t := range tests {
		err := v.Validate(t.req)
		if t.expValid {
			s.NoError(err, t.desc)
		} else {
			s.Error(err, t.desc)
		}
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
