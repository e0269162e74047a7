package domain

import "time"

// AvailabilityStatus has three states. Toggling only moves between
// Available and Booked; Limited is set explicitly.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "Available"
	StatusLimited   AvailabilityStatus = "Limited"
	StatusBooked    AvailabilityStatus = "Booked"
)

// AvailabilityInput is the manual (operator) write payload.
type AvailabilityInput struct {
	IsAvailable bool               `json:"isAvailable"`
	Status      AvailabilityStatus `json:"status"`
	Message     *string            `json:"message,omitempty"`
	CalendlyURL string             `json:"calendlyUrl"`
}

// AvailabilitySyncInput is the payload the importer sends. CalendlyURL may
// be omitted and then defaults to the empty string.
type AvailabilitySyncInput struct {
	NotionID    string             `json:"notionId"`
	IsAvailable bool               `json:"isAvailable"`
	Status      AvailabilityStatus `json:"status"`
	Message     *string            `json:"message,omitempty"`
	CalendlyURL *string            `json:"calendlyUrl,omitempty"`
}

func (a AvailabilitySyncInput) ExternalKey() string { return a.NotionID }

// Normalize converts the sync payload into the stored shape.
func (a AvailabilitySyncInput) Normalize() AvailabilityInput {
	calendly := ""
	if a.CalendlyURL != nil {
		calendly = *a.CalendlyURL
	}
	return AvailabilityInput{
		IsAvailable: a.IsAvailable,
		Status:      a.Status,
		Message:     a.Message,
		CalendlyURL: calendly,
	}
}

type Availability struct {
	ID string `json:"_id"`
	AvailabilityInput
	UpdatedAt time.Time `json:"updatedAt"`
}

// Toggled returns the flipped availability. Leaving availability books the
// calendar, entering it marks it available.
func (a AvailabilityInput) Toggled() AvailabilityInput {
	next := a
	next.IsAvailable = !a.IsAvailable
	if a.IsAvailable {
		next.Status = StatusBooked
	} else {
		next.Status = StatusAvailable
	}
	return next
}
