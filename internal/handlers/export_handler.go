package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
)

// ExportHandler streams staff reports as CSV downloads.
type ExportHandler struct {
	db *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

var appointmentCSVHeader = []string{
	"ID", "Email", "First Name", "Last Name", "Phone Number", "Address",
	"Facebook Link", "Appointment Type", "Date", "Time", "Description",
	"Not Come", "Attire From Gallery", "Status", "Created At", "Updated At",
	"Image URL",
}

func csvBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// appointmentCSVRecord renders one row in appointmentCSVHeader order. The
// gallery column carries the attire's numeric id, not its name, so exported
// files can be joined back against the gallery.
func appointmentCSVRecord(a models.Appointment) []string {
	attire := ""
	if a.AttireID != nil {
		attire = strconv.FormatUint(uint64(*a.AttireID), 10)
	}
	return []string{
		strconv.FormatUint(uint64(a.ID), 10),
		a.User.Email,
		a.User.FirstName,
		a.User.LastName,
		a.User.PhoneNumber,
		a.User.Address,
		a.User.FacebookLink,
		a.AppointmentType,
		a.Date.Format("2006-01-02"),
		a.Time,
		a.Description,
		csvBool(a.NotCome),
		attire,
		a.AppointmentStatus,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
		a.Image,
	}
}

func designCSVRecord(d models.Design) []string {
	fittingDate := ""
	if d.FittingDate != nil {
		fittingDate = d.FittingDate.Format("2006-01-02")
	}
	return []string{
		strconv.FormatUint(uint64(d.ID), 10),
		d.User.Email,
		d.User.FirstName,
		d.User.LastName,
		d.AttireType,
		d.TargetedDate.Format("2006-01-02"),
		d.Description,
		d.ProcessStatus,
		d.PaymentStatus,
		strconv.FormatFloat(d.TotalAmount, 'f', 2, 64),
		strconv.FormatFloat(d.AmountPaid, 'f', 2, 64),
		strconv.FormatFloat(d.Balance, 'f', 2, 64),
		fittingDate,
		d.FittingTime,
		csvBool(d.FittingSuccessful),
		string(d.Updates),
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	}
}

func serveCSV(c *gin.Context, filename string, write func(w *csv.Writer) error) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := write(w); err != nil {
		// Headers already went out, nothing more we can do.
		return
	}
	w.Flush()
}

// Appointments exports every appointment with the owner's contact info
// denormalized into each row.
func (h *ExportHandler) Appointments(c *gin.Context) {
	var rows []models.Appointment
	if err := h.db.
		Preload("User").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "export_failed", "Could not load appointments.")
		return
	}

	serveCSV(c, "appointments.csv", func(w *csv.Writer) error {
		if err := w.Write(appointmentCSVHeader); err != nil {
			return err
		}
		for _, a := range rows {
			if err := w.Write(appointmentCSVRecord(a)); err != nil {
				return err
			}
		}
		return nil
	})
}

var designCSVHeader = []string{
	"ID", "Email", "First Name", "Last Name", "Attire Type", "Targeted Date",
	"Description", "Process Status", "Payment Status", "Total Amount",
	"Amount Paid", "Balance", "Fitting Date", "Fitting Time",
	"Fitting Successful", "Updates", "Created At", "Updated At",
}

// Designs exports the full ledger including the raw updates JSON so the
// shop can audit payment history offline.
func (h *ExportHandler) Designs(c *gin.Context) {
	var rows []models.Design
	if err := h.db.
		Preload("User").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "export_failed", "Could not load designs.")
		return
	}

	serveCSV(c, "designs.csv", func(w *csv.Writer) error {
		if err := w.Write(designCSVHeader); err != nil {
			return err
		}
		for _, d := range rows {
			if err := w.Write(designCSVRecord(d)); err != nil {
				return err
			}
		}
		return nil
	})
}
