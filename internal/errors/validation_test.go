package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/caverns/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("action", "is invalid")
	ve.AddFieldErrorf("attack_power", "must be at least %d", 0)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "action: is invalid")
	s.Assert().Contains(ve.Error(), "attack_power: must be at least 0")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("health", "must be between %d and %d", 1, 999).
		RequiredField("session_id").
		InvalidField("action", "not a combat action")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Fenwick", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Fenwick  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "an implausibly long adventurer name", 20, vb)
	errors.ValidateMaxLength("path", "cave", 10, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["name"][0], "must be no more than 20 characters")
	s.Assert().NotContains(validationErrors, "path")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("danger_level", 9, 0, 4, vb)
	errors.ValidateRange("attack_power", 12, 0, 100, vb)
	errors.ValidateRange("health", -5, 0, 999, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["danger_level"][0], "must be between 0 and 4")
	s.Assert().Contains(validationErrors["health"][0], "must be between 0 and 999")
	s.Assert().NotContains(validationErrors, "attack_power")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedActions := []string{"attack", "defend"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("action", "flee", allowedActions, vb)
	errors.ValidateEnum("first_action", "attack", allowedActions, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["action"][0], "must be one of: attack, defend")
	s.Assert().NotContains(validationErrors, "first_action")
}

func (s *ValidationTestSuite) TestCombinedValidation() {
	// Shape of a turn request as the combat orchestrator validates it
	type TurnInput struct {
		SessionID string
		Action    string
	}

	input := TurnInput{
		SessionID: "",
		Action:    "sing",
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateEnum("action", input.Action, []string{"attack", "defend"}, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "session_id")
	s.Assert().Contains(validationErrors, "action")
}
