package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationIsEmpty(t *testing.T) {
	app := NewApplication()

	assert.Empty(t, app.Patients)
	assert.Empty(t, app.Staff)
	assert.Empty(t, app.Appointments)
	assert.Empty(t, app.Services)
	assert.Empty(t, app.Pharmacy.Medications)
	assert.Empty(t, app.Invoices)
	assert.Empty(t, app.Users)
}

func TestNextIDCountsRecords(t *testing.T) {
	var patients []Patient
	assert.Equal(t, 1, NextID(patients))

	patients = append(patients, Patient{ID: 1}, Patient{ID: 2})
	assert.Equal(t, 3, NextID(patients))
}

func TestNextIDAfterManualEdit(t *testing.T) {
	// The policy is count+1, not max+1: a hand-edited document with an id gap
	// still numbers the next record from the collection length.
	patients := []Patient{{ID: 1}, {ID: 5}}
	assert.Equal(t, 3, NextID(patients))
}

func TestFindReturnsPointerIntoCollection(t *testing.T) {
	app := NewApplication()
	app.Patients = append(app.Patients, Patient{ID: 1, LastName: "Dupont"})

	p := app.FindPatient(1)
	require.NotNil(t, p)

	p.LastName = "Durand"
	assert.Equal(t, "Durand", app.Patients[0].LastName)
}

func TestFindMissingIsNil(t *testing.T) {
	app := NewApplication()

	assert.Nil(t, app.FindPatient(1))
	assert.Nil(t, app.FindStaff(1))
	assert.Nil(t, app.FindService(1))
	assert.Nil(t, app.FindInvoice(1))
	assert.Nil(t, app.FindMedication(1))
	assert.Nil(t, app.FindUser(1))
}

func TestEnumsEncodeByStableTag(t *testing.T) {
	urgency := UrgencyCritical
	data, err := json.Marshal(Patient{ID: 1, Urgency: &urgency})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"urgency":"critical"`)

	data, err = json.Marshal(Invoice{ID: 1, Status: InvoiceStatusPaid})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"paid"`)

	data, err = json.Marshal(UserAccount{ID: 1, Role: RoleReceptionist})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"receptionist"`)
}

func TestUrgencyOmittedWhenUnset(t *testing.T) {
	data, err := json.Marshal(Patient{ID: 1})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "urgency")
}
