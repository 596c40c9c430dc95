package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"taskboard/model"
)

const accountsSheet = "Accounts"

// AccountService backs the administrative account endpoints.
type AccountService struct {
	accounts AccountStore
}

func NewAccountService(accounts AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]model.User, error) {
	users, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	if len(users) == 0 {
		return nil, NotFound("No registered users")
	}
	return users, nil
}

// EditAccount overwrites email, username and role without validating them.
func (s *AccountService) EditAccount(ctx context.Context, userID, email, username, role string) error {
	if userID == "" {
		return Validation("User id is required")
	}
	err := s.accounts.UpdateAccount(ctx, userID, email, username, role)
	return storeErr(err, "User not found", "")
}

// ExportAccounts builds a workbook with one row per account.
func (s *AccountService) ExportAccounts(ctx context.Context) (*excelize.File, error) {
	users, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", accountsSheet); err != nil {
		return nil, Internal(err)
	}

	header := []interface{}{"ID", "Email", "Username", "Role", "Last login"}
	if err := f.SetSheetRow(accountsSheet, "A1", &header); err != nil {
		return nil, Internal(err)
	}
	for i, u := range users {
		row := []interface{}{u.UserID, u.Email, u.Username, u.Role, FormatLastLogin(u)}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(accountsSheet, cell, &row); err != nil {
			return nil, Internal(err)
		}
	}
	if err := f.SetColWidth(accountsSheet, "A", "E", 28); err != nil {
		return nil, Internal(err)
	}
	return f, nil
}
