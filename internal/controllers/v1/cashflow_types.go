package v1

import (
	"github.com/google/uuid"
	"github.com/moneywise/backend/internal/calc"
	"github.com/moneywise/backend/internal/httputil"
	"github.com/moneywise/backend/internal/models"
	"github.com/moneywise/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// CashflowCreate is the transaction form. The amount is booked as
// credit or debit depending on IsCredit.
type CashflowCreate struct {
	Date        types.Date      `json:"date" swaggertype:"string" example:"2024-03-14"`                                 // Date of the transaction
	AccountID   httputil.ID     `json:"accountId" swaggertype:"string" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the account
	TypeID      httputil.ID     `json:"typeId" swaggertype:"string" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`     // ID of the type
	CategoryID  httputil.ID     `json:"categoryId" swaggertype:"string" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	Amount      decimal.Decimal `json:"amount" example:"150000"`                                                        // Amount of the transaction
	Description string          `json:"description" example:"Makan siang"`                                              // Description
	IsCredit    bool            `json:"isCredit" example:"false"`                                                       // Is the amount a credit (income)?
}

func (f CashflowCreate) model(tag language.Tag) (models.Cashflow, error) {
	if f.Date.IsZero() {
		return models.Cashflow{}, errCashflowDateMissing
	}

	if f.Amount.IsNegative() {
		return models.Cashflow{}, errAmountNegative
	}

	credit, debit := decimal.Zero, f.Amount
	if f.IsCredit {
		credit, debit = f.Amount, decimal.Zero
	}

	return models.Cashflow{
		Date:        f.Date.Time(),
		Month:       calc.MonthName(f.Date.Time(), tag),
		Credit:      decimal.NewNullDecimal(credit),
		Debit:       decimal.NewNullDecimal(debit),
		Description: f.Description,
		AccountID:   f.AccountID.Ptr(),
		TypeID:      f.TypeID.Ptr(),
		CategoryID:  f.CategoryID.Ptr(),
	}, nil
}

// CashflowEditable represents all user configurable parameters
type CashflowEditable struct {
	Date        types.Date          `json:"date" swaggertype:"string" example:"2024-03-14"`                                 // Date of the transaction. Changing it also changes the month.
	Credit      decimal.NullDecimal `json:"credit" swaggertype:"string" example:"0"`                                        // Credited amount
	Debit       decimal.NullDecimal `json:"debit" swaggertype:"string" example:"150000"`                                    // Debited amount
	Description string              `json:"description" example:"Makan siang"`                                              // Description
	AccountID   httputil.ID         `json:"accountId" swaggertype:"string" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the account
	CategoryID  httputil.ID         `json:"categoryId" swaggertype:"string" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	TypeID      httputil.ID         `json:"typeId" swaggertype:"string" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`     // ID of the type
}

func (editable CashflowEditable) model(tag language.Tag) models.Cashflow {
	cashflow := models.Cashflow{
		Date:        editable.Date.Time(),
		Credit:      editable.Credit,
		Debit:       editable.Debit,
		Description: editable.Description,
		AccountID:   editable.AccountID.Ptr(),
		CategoryID:  editable.CategoryID.Ptr(),
		TypeID:      editable.TypeID.Ptr(),
	}

	if !editable.Date.IsZero() {
		cashflow.Month = calc.MonthName(editable.Date.Time(), tag)
	}

	return cashflow
}

type Cashflow struct {
	models.DefaultModel
	Date         types.Date          `json:"date" swaggertype:"string" example:"2024-03-14"`            // Date of the transaction
	Month        string              `json:"month" example:"March"`                                     // Month label of the date
	Credit       decimal.NullDecimal `json:"credit" swaggertype:"string" example:"0"`                   // Credited amount
	Debit        decimal.NullDecimal `json:"debit" swaggertype:"string" example:"150000"`               // Debited amount
	Description  string              `json:"description" example:"Makan siang"`                         // Description
	AccountID    *uuid.UUID          `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the account
	CategoryID   *uuid.UUID          `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category
	TypeID       *uuid.UUID          `json:"typeId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`     // ID of the type
	AccountName  string              `json:"accountName" example:"BCA"`                                 // Name of the account
	CategoryName string              `json:"categoryName" example:"Makan"`                              // Name of the category
	TypeName     string              `json:"typeName" example:"Expense"`                                // Name of the type
	Links        SelfLink            `json:"links"`
}

type CashflowListResponse struct {
	Data       []Cashflow            `json:"data"`                                                          // List of cashflows
	Error      *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination           `json:"pagination"`                                                    // Pagination information
	Totals     *calc.CashflowSummary `json:"totals"`                                                        // Totals of all cashflows matching the search
}

type CashflowCreateResponse struct {
	Data  []CashflowResponse `json:"data"`                                                          // List of the created cashflows or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CashflowCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CashflowResponse{Error: &s})
	return createStatus(err, currentStatus)
}

type CashflowResponse struct {
	Data  *Cashflow `json:"data"`                                                          // Data for the cashflow
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CashflowQueryFilter struct {
	Search string `form:"search"`         // Text in description, category name or account name
	Page   int    `form:"page,default=1"` // Page to return, starting at 1
}
