package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
)

func statusFor(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondBusiness(c, err)
	return w.Code
}

func TestRespondBusiness(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(httperr.ErrBusiness("appointment_not_found")))
	assert.Equal(t, http.StatusNotFound, statusFor(httperr.ErrBusiness("design_not_found")))

	assert.Equal(t, http.StatusForbidden, statusFor(httperr.ErrBusiness("status_not_allowed")))
	assert.Equal(t, http.StatusForbidden, statusFor(httperr.ErrBusiness("staff_only")))

	assert.Equal(t, http.StatusBadRequest, statusFor(httperr.ErrBusiness("invalid_date")))
	assert.Equal(t, http.StatusBadRequest, statusFor(httperr.ErrBusiness("otp_mismatch")))

	// Non-business errors never leak details, just a 500.
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("pq: connection reset")))
}

func TestAppointmentCSVHeaderOrder(t *testing.T) {
	// Downstream spreadsheets key on column positions; the order is part of
	// the contract.
	want := []string{
		"ID", "Email", "First Name", "Last Name", "Phone Number", "Address",
		"Facebook Link", "Appointment Type", "Date", "Time", "Description",
		"Not Come", "Attire From Gallery", "Status", "Created At",
		"Updated At", "Image URL",
	}
	assert.Equal(t, want, appointmentCSVHeader)
}

func TestAppointmentCSVRecord(t *testing.T) {
	attireID := uint(14)
	a := models.Appointment{
		ID:                3,
		User:              models.User{Email: "ana@example.com", FirstName: "Ana"},
		AppointmentType:   "fitting",
		Date:              time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:              "8:30 - 10:00",
		NotCome:           true,
		AttireID:          &attireID,
		AppointmentStatus: "approved",
	}

	rec := appointmentCSVRecord(a)
	assert.Len(t, rec, len(appointmentCSVHeader))
	assert.Equal(t, "3", rec[0])
	assert.Equal(t, "ana@example.com", rec[1])
	assert.Equal(t, "2025-09-01", rec[8])
	assert.Equal(t, "Yes", rec[11])
	// The gallery column carries the attire id so exports can be joined
	// back against the gallery table.
	assert.Equal(t, "14", rec[12])

	a.AttireID = nil
	assert.Equal(t, "", appointmentCSVRecord(a)[12])
}
