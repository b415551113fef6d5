package services

import (
	"testing"
	"time"

	"clefmusic-api/internal/db"
	"clefmusic-api/internal/models"

	"github.com/google/uuid"
)

// insertAccountWithJoinDate writes an accounts row directly so the join
// timestamp can be controlled.
func insertAccountWithJoinDate(t *testing.T, database *db.DB, email, status string, joinDate time.Time) {
	t.Helper()
	_, err := database.Exec(
		database.Rebind(`INSERT INTO accounts
			(id, first_name, last_name, email, phone, address, city, country, password_hash, status, join_date, last_login, login_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		uuid.NewString(), "Test", "User", email, "", "", "", "", "x", status, joinDate, joinDate, 1,
	)
	if err != nil {
		t.Fatalf("insert account: %v", err)
	}
}

func TestDashboardCounts(t *testing.T) {
	database := newTestDB(t)
	dashboard := NewDashboardService(database, testLogger())
	submissions := NewSubmissionService(database, testLogger())
	products := NewProductService(database, testLogger())

	now := time.Now().UTC()
	insertAccountWithJoinDate(t, database, "new@example.com", string(models.AccountStatusActive), now.AddDate(0, 0, -1))
	insertAccountWithJoinDate(t, database, "old@example.com", string(models.AccountStatusActive), now.AddDate(0, 0, -30))
	insertAccountWithJoinDate(t, database, "inactive@example.com", string(models.AccountStatusInactive), now.AddDate(0, 0, -60))

	if _, err := submissions.CreateServiceRequest(serviceRequestForm()); err != nil {
		t.Fatalf("create service request: %v", err)
	}
	msg, err := submissions.CreateContactMessage(&models.ContactMessageForm{
		CustomerName: "Jane Doe", CustomerEmail: "jane@example.com", OrderType: "sound-systems", Message: "Need a mixer recommendation",
	})
	if err != nil {
		t.Fatalf("create contact message: %v", err)
	}
	if _, err := submissions.UpdateContactMessageStatus(msg.ID, models.SubmissionStatusReplied); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if _, err := products.Create(&models.CreateProductRequest{Name: "Tuner", Price: 29.99, Category: "Accessories"}); err != nil {
		t.Fatalf("create product: %v", err)
	}

	counts, err := dashboard.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	if counts.TotalAccounts != 3 {
		t.Fatalf("expected 3 accounts, got %d", counts.TotalAccounts)
	}
	if counts.ActiveAccounts != 2 {
		t.Fatalf("expected 2 active accounts, got %d", counts.ActiveAccounts)
	}
	if counts.NewAccountsThisWeek != 1 {
		t.Fatalf("expected 1 new account this week, got %d", counts.NewAccountsThisWeek)
	}
	if counts.ServiceRequests.Total != 1 || counts.ServiceRequests.Open != 1 {
		t.Fatalf("unexpected service request counts: %+v", counts.ServiceRequests)
	}
	if counts.ContactMessages.Total != 1 || counts.ContactMessages.Open != 0 {
		t.Fatalf("unexpected contact message counts: %+v", counts.ContactMessages)
	}
	if counts.BrochureRequests.Total != 0 {
		t.Fatalf("unexpected brochure request counts: %+v", counts.BrochureRequests)
	}
	if counts.TotalProducts != 1 || counts.TotalCategories != 1 {
		t.Fatalf("unexpected catalog counts: products=%d categories=%d", counts.TotalProducts, counts.TotalCategories)
	}
}

func TestDashboardRecentLimitsAndOrders(t *testing.T) {
	database := newTestDB(t)
	dashboard := NewDashboardService(database, testLogger())
	submissions := NewSubmissionService(database, testLogger())

	var ids []string
	for i := 0; i < 4; i++ {
		created, err := submissions.CreateServiceRequest(serviceRequestForm())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, created.ID)
	}

	recent, err := dashboard.RecentServiceRequests(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].ID != ids[0] || recent[1].ID != ids[1] {
		t.Fatal("expected the first entries in insertion order")
	}
}

func TestDashboardSummary(t *testing.T) {
	database := newTestDB(t)
	dashboard := NewDashboardService(database, testLogger())
	submissions := NewSubmissionService(database, testLogger())

	if _, err := submissions.CreateBrochureRequest(&models.BrochureRequestForm{
		ProductID: "p1", ProductName: "Digital Piano", ProductPrice: 1299, CustomerEmail: "jane@example.com", CustomerPhone: "1",
	}); err != nil {
		t.Fatalf("create brochure request: %v", err)
	}

	summary, err := dashboard.Summary(5)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Counts == nil {
		t.Fatal("expected counts")
	}
	if len(summary.RecentBrochureRequests) != 1 {
		t.Fatalf("expected 1 recent brochure request, got %d", len(summary.RecentBrochureRequests))
	}
	if len(summary.RecentServiceRequests) != 0 || len(summary.RecentContactMessages) != 0 {
		t.Fatal("expected empty recent lists for untouched ledgers")
	}
}
