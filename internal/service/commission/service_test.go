package commission

import (
	"context"
	"testing"
	"time"

	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/appointment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/commission"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/payment"
	"github.com/Ipswich38/Kreativdentalplus-sub000/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeCommissionRepo struct {
	splits     map[string][]commission.Commission
	earnings   map[string]commission.ClinicEarnings
	markedPaid []string
}

func newFakeCommissionRepo() *fakeCommissionRepo {
	return &fakeCommissionRepo{
		splits:   map[string][]commission.Commission{},
		earnings: map[string]commission.ClinicEarnings{},
	}
}

func (f *fakeCommissionRepo) SaveSplit(ctx context.Context, commissions []commission.Commission, earnings commission.ClinicEarnings) ([]commission.Commission, commission.ClinicEarnings, error) {
	if _, exists := f.earnings[earnings.PaymentID]; exists {
		return nil, commission.ClinicEarnings{}, commission.ErrAlreadyCalculated
	}
	f.splits[earnings.PaymentID] = commissions
	f.earnings[earnings.PaymentID] = earnings
	return commissions, earnings, nil
}

func (f *fakeCommissionRepo) GetEarningsByPaymentID(ctx context.Context, paymentID string) (commission.ClinicEarnings, error) {
	e, ok := f.earnings[paymentID]
	if !ok {
		return commission.ClinicEarnings{}, commission.ErrEarningsNotFound
	}
	return e, nil
}

func (f *fakeCommissionRepo) List(ctx context.Context, filter commission.CommissionFilter) ([]commission.Commission, error) {
	var result []commission.Commission
	for _, split := range f.splits {
		for _, c := range split {
			if filter.StaffID != nil && c.StaffID != *filter.StaffID {
				continue
			}
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCommissionRepo) MarkPaid(ctx context.Context, ids []string) error {
	f.markedPaid = append(f.markedPaid, ids...)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]payment.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	f.payments[p.ID] = p
	return p, nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return payment.Payment{}, payment.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]payment.Payment, error) {
	return nil, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]appointment.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	return a, nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (appointment.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return appointment.Appointment{}, appointment.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointmentRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]appointment.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) ListWorkedByDentist(ctx context.Context, dentistID string, start, end time.Time) ([]appointment.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateBookingStatus(ctx context.Context, id string, status appointment.BookingStatus) error {
	return nil
}

func (f *fakeAppointmentRepo) AdvanceFlow(ctx context.Context, id string, from, to appointment.FlowStatus, assignedStaffID *string) (appointment.Appointment, error) {
	return appointment.Appointment{}, nil
}

func (f *fakeAppointmentRepo) ExpireOverdueFlows(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.StaffMember) (staff.StaffMember, error) {
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.StaffMember, error) {
	s, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]staff.StaffMember, error) {
	return nil, nil
}

func (f *fakeStaffRepo) ListActiveByCategory(ctx context.Context, category staff.RoleCategory) ([]staff.StaffMember, error) {
	return nil, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, req staff.UpdateStaffRequest) error {
	return nil
}

func (f *fakeStaffRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

// ===== HELPERS =====

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

type fixture struct {
	commissionRepo *fakeCommissionRepo
	payments       *fakePaymentRepo
	appointments   *fakeAppointmentRepo
	staffMembers   *fakeStaffRepo
	svc            commission.Service
}

func newFixture() *fixture {
	f := &fixture{
		commissionRepo: newFakeCommissionRepo(),
		payments:       &fakePaymentRepo{payments: map[string]payment.Payment{}},
		appointments:   &fakeAppointmentRepo{appointments: map[string]appointment.Appointment{}},
		staffMembers:   &fakeStaffRepo{members: map[string]staff.StaffMember{}},
	}
	f.svc = NewCommissionService(f.commissionRepo, f.payments, f.appointments, f.staffMembers)
	return f
}

func (f *fixture) addDentist(id string, rates *staff.CommissionRates) {
	f.staffMembers.members[id] = staff.StaffMember{
		ID: id, FullName: "Dr. " + id, Category: staff.CategoryDentist,
		CommissionRates: rates, IsActive: true,
	}
}

func (f *fixture) addStaff(id string, category staff.RoleCategory) {
	f.staffMembers.members[id] = staff.StaffMember{
		ID: id, FullName: id, Category: category, IsActive: true,
	}
}

func (f *fixture) addPayment(paymentID, appointmentID, dentistID string, assignedStaffID *string, amount string) {
	f.payments.payments[paymentID] = payment.Payment{
		ID:            paymentID,
		AppointmentID: appointmentID,
		PatientID:     "p1",
		Amount:        decimal.RequireFromString(amount),
		Method:        "cash",
		PaymentDate:   time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	f.appointments.appointments[appointmentID] = appointment.Appointment{
		ID:              appointmentID,
		PatientID:       "p1",
		DentistID:       dentistID,
		AssignedStaffID: assignedStaffID,
		FlowStatus:      appointment.FlowAwaitingPayment,
	}
}

func amountFor(t *testing.T, split commission.SplitResponse, typ string) decimal.Decimal {
	t.Helper()
	for _, c := range split.Commissions {
		if c.Type == typ {
			return c.Amount
		}
	}
	t.Fatalf("no %s commission in split", typ)
	return decimal.Zero
}

// ===== SPLIT TESTS =====

func TestCalculateForPayment_ThreeWaySplit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", nil)
	f.addStaff("s1", staff.CategoryAssistant)
	f.addPayment("pay1", "a1", "d1", strPtr("s1"), "8000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)
	require.Len(t, split.Commissions, 2)

	assert.True(t, amountFor(t, split, "dentist").Equal(decimal.RequireFromString("3200")))
	assert.True(t, amountFor(t, split, "assistant").Equal(decimal.RequireFromString("400")))
	assert.True(t, split.Earnings.NetEarnings.Equal(decimal.RequireFromString("4400")))
	assert.True(t, split.Earnings.GrossAmount.Equal(decimal.RequireFromString("8000")))
	assert.Equal(t, 3, split.Commissions[0].PeriodMonth)
	assert.Equal(t, 2024, split.Commissions[0].PeriodYear)
}

// Gross must equal commissions plus net with no rounding drift, including on
// amounts that do not divide evenly.
func TestCalculateForPayment_ExactConservation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, amount := range []string{"8000", "1234.56", "99.99", "0.01", "7777.77"} {
		f := newFixture()
		f.addDentist("d1", nil)
		f.addStaff("s1", staff.CategoryHygienist)
		f.addPayment("pay1", "a1", "d1", strPtr("s1"), amount)

		split, err := f.svc.CalculateForPayment(ctx, "pay1")
		require.NoError(t, err)

		sum := split.Earnings.NetEarnings
		for _, c := range split.Commissions {
			sum = sum.Add(c.Amount)
		}
		assert.True(t, sum.Equal(decimal.RequireFromString(amount)),
			"amount %s: commissions+net reassembled to %s", amount, sum)
	}
}

func TestCalculateForPayment_NoAssignedStaff(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", nil)
	f.addPayment("pay1", "a1", "d1", nil, "5000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)
	require.Len(t, split.Commissions, 1)

	assert.True(t, amountFor(t, split, "dentist").Equal(decimal.RequireFromString("2000")))
	assert.True(t, split.Earnings.NetEarnings.Equal(decimal.RequireFromString("3000")))
}

func TestCalculateForPayment_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", nil)
	f.addPayment("pay1", "a1", "d1", nil, "5000")

	_, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)

	_, err = f.svc.CalculateForPayment(ctx, "pay1")
	assert.ErrorIs(t, err, commission.ErrAlreadyCalculated)

	// The stored split is untouched
	assert.Len(t, f.commissionRepo.splits["pay1"], 1)
}

// ===== RATE RESOLUTION TESTS =====

func TestCalculateForPayment_CustomTreatmentRate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", &staff.CommissionRates{TreatmentRate: f64Ptr(0.50), OwnerShare: f64Ptr(0.30)})
	f.addPayment("pay1", "a1", "d1", nil, "1000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)

	// treatment_rate wins over owner_share, never blended
	assert.True(t, amountFor(t, split, "dentist").Equal(decimal.RequireFromString("500")))
}

func TestCalculateForPayment_OwnerShareFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", &staff.CommissionRates{OwnerShare: f64Ptr(0.30)})
	f.addPayment("pay1", "a1", "d1", nil, "1000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)
	assert.True(t, amountFor(t, split, "dentist").Equal(decimal.RequireFromString("300")))
}

// A custom treatment rate of zero means the dentist earns nothing on the
// payment; no zero-amount record may be persisted.
func TestCalculateForPayment_ZeroTreatmentRate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", &staff.CommissionRates{TreatmentRate: f64Ptr(0)})
	f.addPayment("pay1", "a1", "d1", nil, "1000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)

	assert.Empty(t, split.Commissions)
	assert.Empty(t, f.commissionRepo.splits["pay1"])
	assert.True(t, split.Earnings.NetEarnings.Equal(decimal.RequireFromString("1000")))
}

func TestCalculateForPayment_ZeroTreatmentRateKeepsStaffShare(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", &staff.CommissionRates{TreatmentRate: f64Ptr(0)})
	f.addStaff("s1", staff.CategoryAssistant)
	f.addPayment("pay1", "a1", "d1", strPtr("s1"), "1000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)
	require.Len(t, split.Commissions, 1)

	assert.True(t, amountFor(t, split, "assistant").Equal(decimal.RequireFromString("50")))
	assert.True(t, split.Earnings.NetEarnings.Equal(decimal.RequireFromString("950")))
}

func TestCalculateForPayment_StaffCategoryRates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		category   staff.RoleCategory
		wantType   string
		wantAmount string
	}{
		{staff.CategoryAssistant, "assistant", "50"},
		{staff.CategoryHygienist, "hygienist", "80"},
		{staff.CategoryCoordinator, "coordinator", "30"},
		{staff.CategoryOther, "assistant", "50"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			f := newFixture()
			f.addDentist("d1", nil)
			f.addStaff("s1", tt.category)
			f.addPayment("pay1", "a1", "d1", strPtr("s1"), "1000")

			split, err := f.svc.CalculateForPayment(ctx, "pay1")
			require.NoError(t, err)
			assert.True(t, amountFor(t, split, tt.wantType).Equal(decimal.RequireFromString(tt.wantAmount)))
		})
	}
}

func TestCalculateForPayment_DentistAssistingThemself(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture()
	f.addDentist("d1", nil)
	f.addPayment("pay1", "a1", "d1", strPtr("d1"), "1000")

	split, err := f.svc.CalculateForPayment(ctx, "pay1")
	require.NoError(t, err)
	require.Len(t, split.Commissions, 1, "dentist must not earn an assisting share on top")
}

func TestCalculateForPayment_UnknownPayment(t *testing.T) {
	t.Parallel()
	f := newFixture()

	_, err := f.svc.CalculateForPayment(context.Background(), "ghost")
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}
