// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/wellbore/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	req := models.CreateWorkoverRequest{Rig: "R-1", Reason: "rod part"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error for missing well")
	}
	fields := verr.Fields()
	if len(fields) != 1 || fields[0] != "well" {
		t.Errorf("Fields() = %v, want [well]", fields)
	}
	if !strings.Contains(verr.Error(), "well is required") {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestValidateStruct_MoneyBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    models.Money
		wantErr bool
	}{
		{"zero", models.MoneyFromInt(0), false},
		{"typical", models.MoneyFromFloat(1500.00), false},
		{"negative", models.MoneyFromInt(-1), true},
		{"too many digits", models.MoneyFromInt(100000000), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := models.CreateRigRequest{Name: "Rig-7", Contractor: "Acme", DayRate: tt.rate.Ptr()}
			verr := ValidateStruct(&req)
			if (verr != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() = %v, wantErr %v", verr, tt.wantErr)
			}
			if verr != nil && verr.Errors()[0].Field() != "dayRate" {
				t.Errorf("field = %q, want dayRate", verr.Errors()[0].Field())
			}
		})
	}
}

func TestValidateStruct_OneOf(t *testing.T) {
	t.Parallel()

	bad := "Sideways"
	verr := ValidateStruct(&models.WellDownPatch{Status: &bad})
	if verr == nil {
		t.Fatal("expected oneof failure")
	}
	if got := verr.Error(); got != "status must be one of: Down Up" {
		t.Errorf("Error() = %q", got)
	}

	up := "Up"
	if verr := ValidateStruct(&models.WellDownPatch{Status: &up}); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}
}

func TestValidateStruct_StringLength(t *testing.T) {
	t.Parallel()

	req := models.CreateRigRequest{Name: strings.Repeat("x", 101), Contractor: "Acme", DayRate: models.MoneyFromInt(1).Ptr()}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected max length failure")
	}
	if !strings.Contains(verr.Error(), "name must be at most 100 characters") {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestNewRequestValidationError(t *testing.T) {
	t.Parallel()

	verr := NewRequestValidationError("Missing required fields: name, contractor, dayRate", "name", "dayRate")
	if verr.Error() != "Missing required fields: name, contractor, dayRate" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if got := verr.Fields(); len(got) != 2 || got[1] != "dayRate" {
		t.Errorf("Fields() = %v", got)
	}
}
