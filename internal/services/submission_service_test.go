package services

import (
	"errors"
	"testing"

	"clefmusic-api/internal/models"
)

func newSubmissionService(t *testing.T) *SubmissionService {
	t.Helper()
	return NewSubmissionService(newTestDB(t), testLogger())
}

func serviceRequestForm() *models.ServiceRequestForm {
	return &models.ServiceRequestForm{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+31612345678",
		TypeNumber:    "T-100",
		SerialNumber:  "SN-0042",
		Address:       "Kerkstraat 1, 1017 GE Amsterdam, Netherlands",
		Message:       "The organ pedal is sticking",
	}
}

func TestServiceRequestRoundTrip(t *testing.T) {
	svc := newSubmissionService(t)

	created, err := svc.CreateServiceRequest(serviceRequestForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != models.SubmissionStatusPending {
		t.Fatalf("expected initial status Pending, got %s", created.Status)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	requests, err := svc.ListServiceRequests()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	got := requests[0]
	if got.CustomerName != "Jane Doe" || got.SerialNumber != "SN-0042" || got.Message != "The organ pedal is sticking" {
		t.Fatalf("fields not preserved: %+v", got)
	}
}

func TestServiceRequestStatusTransition(t *testing.T) {
	svc := newSubmissionService(t)

	first, err := svc.CreateServiceRequest(serviceRequestForm())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.CreateServiceRequest(serviceRequestForm())
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	updated, err := svc.UpdateServiceRequestStatus(first.ID, models.SubmissionStatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.SubmissionStatusCompleted {
		t.Fatalf("expected Completed, got %s", updated.Status)
	}

	requests, err := svc.ListServiceRequests()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	completed := 0
	for _, r := range requests {
		if r.Status == models.SubmissionStatusCompleted {
			completed++
			if r.ID != first.ID {
				t.Fatalf("wrong record completed: %s", r.ID)
			}
		}
	}
	if completed != 1 {
		t.Fatalf("expected exactly one completed record, got %d", completed)
	}

	got, err := svc.GetServiceRequest(second.ID)
	if err != nil {
		t.Fatalf("get second: %v", err)
	}
	if got.Status != models.SubmissionStatusPending {
		t.Fatalf("second record must stay Pending, got %s", got.Status)
	}
}

func TestServiceRequestIllegalTransitions(t *testing.T) {
	svc := newSubmissionService(t)

	created, err := svc.CreateServiceRequest(serviceRequestForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Arbitrary status strings are rejected.
	if _, err := svc.UpdateServiceRequestStatus(created.ID, models.SubmissionStatus("Archived")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for arbitrary status, got %v", err)
	}

	if _, err := svc.UpdateServiceRequestStatus(created.ID, models.SubmissionStatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// The flow is one-directional; no transition leaves the terminal state.
	if _, err := svc.UpdateServiceRequestStatus(created.ID, models.SubmissionStatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for reverse transition, got %v", err)
	}
	if _, err := svc.UpdateServiceRequestStatus(created.ID, models.SubmissionStatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for repeated completion, got %v", err)
	}
}

func TestUpdateStatusUnknownIDLeavesLedgerUnchanged(t *testing.T) {
	svc := newSubmissionService(t)

	created, err := svc.CreateServiceRequest(serviceRequestForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateServiceRequestStatus("missing", models.SubmissionStatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	got, err := svc.GetServiceRequest(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.SubmissionStatusPending {
		t.Fatalf("ledger modified by failed update: %s", got.Status)
	}
}

func TestContactMessageScenario(t *testing.T) {
	svc := newSubmissionService(t)

	created, err := svc.CreateContactMessage(&models.ContactMessageForm{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		OrderType:     "lighting-systems",
		Message:       "Need a quote for stage lights",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	messages, err := svc.ListContactMessages()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Status != models.SubmissionStatusNew {
		t.Fatalf("expected status New, got %s", messages[0].Status)
	}
	if messages[0].OrderType != "lighting-systems" {
		t.Fatalf("order type not preserved: %s", messages[0].OrderType)
	}

	updated, err := svc.UpdateContactMessageStatus(created.ID, models.SubmissionStatusReplied)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.SubmissionStatusReplied {
		t.Fatalf("expected Replied, got %s", updated.Status)
	}

	messages, err = svc.ListContactMessages()
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if messages[0].ID != created.ID || messages[0].Status != models.SubmissionStatusReplied {
		t.Fatalf("unexpected entry after update: %+v", messages[0])
	}
}

func TestBrochureRequestFlow(t *testing.T) {
	svc := newSubmissionService(t)

	created, err := svc.CreateBrochureRequest(&models.BrochureRequestForm{
		ProductID:     "prod-1",
		ProductName:   "Digital Piano",
		ProductPrice:  1299,
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+31612345678",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != models.SubmissionStatusPending {
		t.Fatalf("expected Pending, got %s", created.Status)
	}

	updated, err := svc.UpdateBrochureRequestStatus(created.ID, models.SubmissionStatusSent)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != models.SubmissionStatusSent {
		t.Fatalf("expected Sent, got %s", updated.Status)
	}

	// Replied belongs to the contact-message flow, not brochures.
	if _, err := svc.UpdateBrochureRequestStatus(created.ID, models.SubmissionStatusReplied); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestListOrderIsInsertionOrder(t *testing.T) {
	svc := newSubmissionService(t)

	var ids []string
	for i := 0; i < 3; i++ {
		form := serviceRequestForm()
		created, err := svc.CreateServiceRequest(form)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, created.ID)
	}

	requests, err := svc.ListServiceRequests()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(requests) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(requests))
	}
	for i, r := range requests {
		if r.ID != ids[i] {
			t.Fatalf("position %d: expected %s, got %s", i, ids[i], r.ID)
		}
	}
}
