package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/attendance"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payroll"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakePayrollRepo struct {
	records map[string]*payroll.Payroll
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: map[string]*payroll.Payroll{}}
}

func (f *fakePayrollRepo) ExistsForPeriod(ctx context.Context, periodStart, periodEnd time.Time) (bool, error) {
	for _, r := range f.records {
		if r.PeriodStart.Equal(periodStart) && r.PeriodEnd.Equal(periodEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayrollRepo) CreateBatch(ctx context.Context, records []payroll.Payroll) ([]payroll.Payroll, error) {
	created := make([]payroll.Payroll, 0, len(records))
	for _, r := range records {
		for _, existing := range f.records {
			if existing.StaffID == r.StaffID &&
				existing.PeriodStart.Equal(r.PeriodStart) &&
				existing.PeriodEnd.Equal(r.PeriodEnd) {
				return nil, payroll.ErrPayrollAlreadyGenerated
			}
		}
		f.nextID++
		r.ID = fmt.Sprintf("pr%d", f.nextID)
		stored := r
		f.records[r.ID] = &stored
		created = append(created, stored)
	}
	return created, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	r, ok := f.records[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return *r, nil
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	var result []payroll.Payroll
	for _, r := range f.records {
		if filter.StaffID != nil && r.StaffID != *filter.StaffID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (f *fakePayrollRepo) UpdateStatus(ctx context.Context, id string, from, to payroll.PayrollStatus, actorID *string) error {
	r, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	if r.Status != from {
		return payroll.ErrInvalidStatusTransition
	}
	r.Status = to
	if actorID != nil {
		r.ApprovedBy = actorID
	}
	return nil
}

type fakeAttendanceService struct {
	summaries []attendance.PeriodSummary
	err       error
}

func (f *fakeAttendanceService) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (f *fakeAttendanceService) ListByStaff(ctx context.Context, staffID string, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) BuildPeriodSummary(ctx context.Context, start, end time.Time, staffID *string) ([]attendance.PeriodSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if staffID == nil {
		return f.summaries, nil
	}
	var filtered []attendance.PeriodSummary
	for _, s := range f.summaries {
		if s.StaffID == *staffID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// ===== HELPERS =====

func strPtr(s string) *string { return &s }

func summaryFor(staffID, name string, totalHours, regular, overtime float64, gross string) attendance.PeriodSummary {
	return attendance.PeriodSummary{
		StaffID:       staffID,
		StaffName:     name,
		Category:      staff.CategoryAssistant,
		HourlyRate:    decimal.RequireFromString("100"),
		DaysWorked:    2,
		TotalHours:    totalHours,
		RegularHours:  regular,
		OvertimeHours: overtime,
		GrossPay:      decimal.RequireFromString(gross),
	}
}

func validRequest() payroll.GeneratePayrollRequest {
	return payroll.GeneratePayrollRequest{
		PeriodStart: "2024-03-01",
		PeriodEnd:   "2024-03-15",
	}
}

// ===== GENERATE TESTS =====

func TestGenerate_CreatesPendingRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeAttendanceService{summaries: []attendance.PeriodSummary{
		summaryFor("s1", "Ana Reyes", 18, 16, 2, "1850"),
		summaryFor("s2", "Ben Cruz", 8, 8, 0, "800"),
	}})

	created, err := svc.Generate(ctx, validRequest())
	require.NoError(t, err)
	require.Len(t, created, 2)

	for _, record := range created {
		assert.Equal(t, string(payroll.PayrollStatusPending), record.Status)
		assert.True(t, record.Deductions.IsZero())
		assert.True(t, record.NetPay.Equal(record.GrossPay), "net must equal gross with zero deductions")
	}

	byStaff := map[string]payroll.PayrollResponse{}
	for _, record := range created {
		byStaff[record.StaffID] = record
	}
	assert.InDelta(t, 18.0, byStaff["s1"].HoursWorked, 1e-9)
	assert.InDelta(t, 2.0, byStaff["s1"].OvertimeHours, 1e-9)
	assert.True(t, byStaff["s1"].GrossPay.Equal(decimal.RequireFromString("1850")))
}

func TestGenerate_RejectsDuplicatePeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeAttendanceService{summaries: []attendance.PeriodSummary{
		summaryFor("s1", "Ana Reyes", 8, 8, 0, "800"),
	}})

	_, err := svc.Generate(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Generate(ctx, validRequest())
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyGenerated)
	assert.Len(t, repo.records, 1, "duplicate run must not add records")
}

func TestGenerate_NoAttendanceData(t *testing.T) {
	t.Parallel()
	svc := NewPayrollService(newFakePayrollRepo(), &fakeAttendanceService{})

	_, err := svc.Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, payroll.ErrNoAttendanceData)
}

func TestGenerate_SingleStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeAttendanceService{summaries: []attendance.PeriodSummary{
		summaryFor("s1", "Ana Reyes", 8, 8, 0, "800"),
		summaryFor("s2", "Ben Cruz", 8, 8, 0, "800"),
	}})

	req := validRequest()
	req.StaffID = strPtr("s2")
	created, err := svc.Generate(ctx, req)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "s2", created[0].StaffID)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	t.Parallel()
	svc := NewPayrollService(newFakePayrollRepo(), &fakeAttendanceService{})

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		PeriodStart: "2024-03-15",
		PeriodEnd:   "2024-03-01",
	})
	assert.Error(t, err)
}

// ===== STATUS TRANSITION TESTS =====

func TestApprove_ThenMarkPaid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeAttendanceService{summaries: []attendance.PeriodSummary{
		summaryFor("s1", "Ana Reyes", 8, 8, 0, "800"),
	}})

	created, err := svc.Generate(ctx, validRequest())
	require.NoError(t, err)
	id := created[0].ID

	require.NoError(t, svc.Approve(ctx, id, strPtr("admin1")))

	record, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusApproved), record.Status)
	require.NotNil(t, record.ApprovedBy)
	assert.Equal(t, "admin1", *record.ApprovedBy)

	require.NoError(t, svc.MarkPaid(ctx, id))

	record, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), record.Status)
}

func TestMarkPaid_RequiresApprovedStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, &fakeAttendanceService{summaries: []attendance.PeriodSummary{
		summaryFor("s1", "Ana Reyes", 8, 8, 0, "800"),
	}})

	created, err := svc.Generate(ctx, validRequest())
	require.NoError(t, err)

	err = svc.MarkPaid(ctx, created[0].ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)
}

func TestApprove_UnknownRecord(t *testing.T) {
	t.Parallel()
	svc := NewPayrollService(newFakePayrollRepo(), &fakeAttendanceService{})

	err := svc.Approve(context.Background(), "ghost", strPtr("admin1"))
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}
