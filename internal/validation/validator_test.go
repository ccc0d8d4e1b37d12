package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"finledger/internal/dto"
)

type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.validator = GetValidator()
}

func (s *ValidatorTestSuite) validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Amount:      decimal.NewFromInt(50),
		Type:        "expense",
		CategoryID:  1,
		Date:        "2024-04-05",
		Description: "Obiad",
	}
}

func (s *ValidatorTestSuite) TestValidRequestPasses() {
	s.NoError(s.validator.Struct(s.validCreateRequest()))
}

func (s *ValidatorTestSuite) TestCreateTransactionRules() {
	cases := []struct {
		name   string
		mutate func(*dto.CreateTransactionRequest)
	}{
		{"unknown type", func(r *dto.CreateTransactionRequest) { r.Type = "transfer" }},
		{"missing type", func(r *dto.CreateTransactionRequest) { r.Type = "" }},
		{"malformed date", func(r *dto.CreateTransactionRequest) { r.Date = "05.04.2024" }},
		{"missing date", func(r *dto.CreateTransactionRequest) { r.Date = "" }},
		{"negative category", func(r *dto.CreateTransactionRequest) { r.CategoryID = -1 }},
		{"negative amount", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.NewFromInt(-5) }},
		{"zero amount", func(r *dto.CreateTransactionRequest) { r.Amount = decimal.NewFromInt(0) }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.validCreateRequest()
			tc.mutate(&req)
			s.Error(s.validator.Struct(req))
		})
	}
}

func (s *ValidatorTestSuite) TestMonthAnchorRule() {
	valid := dto.CreateBudgetRequest{CategoryID: 1, Amount: decimal.NewFromInt(500), Month: "2024-05-01"}
	s.NoError(s.validator.Struct(valid))

	midMonth := valid
	midMonth.Month = "2024-05-15"
	s.Error(s.validator.Struct(midMonth))
}

func (s *ValidatorTestSuite) TestFormatErrorsUsesJSONFieldNames() {
	req := s.validCreateRequest()
	req.Date = "not-a-date"

	err := s.validator.Struct(req)
	s.Require().Error(err)

	details := FormatErrors(err)
	s.Require().Len(details, 1)
	s.Equal("date: failed calendar_date validation", details[0])
}
