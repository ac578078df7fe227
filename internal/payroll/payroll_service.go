package payroll

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/hyagosilvaxds/backend-erp-sub001/internal/earning"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employee"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/events"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka"
	payrollerrors "github.com/hyagosilvaxds/backend-erp-sub001/internal/payroll/errors"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/contextutil"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/metrics"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// TaxTableResolver returns the table in force for a period, or nil when the
// company has none configured.
type TaxTableResolver interface {
	GetActiveTable(ctx context.Context, companyID string, kind taxtable.Kind, year, month int) (*taxtable.TaxTable, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	Calculate(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error)
	Approve(ctx context.Context, companyID, approverID, id string) (PayrollResponse, error)
	Pay(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error)

	GetItems(ctx context.Context, companyID, id string) ([]PayrollItemResponse, error)
	AddOrUpdateItem(ctx context.Context, companyID, id, employeeID string, req UpsertItemRequest) (PayrollItemResponse, error)
	RemoveItem(ctx context.Context, companyID, id, employeeID string) error
	GetBreakdown(ctx context.Context, companyID, id string) (PayrollBreakdownResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	earnings  earning.Repository
	taxTables TaxTableResolver
	outbox    kafka.OutboxRepository
	metrics   *metrics.PayrollMetrics
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	earnings earning.Repository,
	taxTables TaxTableResolver,
	outboxRepo kafka.OutboxRepository,
	m *metrics.PayrollMetrics,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		earnings:  earnings,
		taxTables: taxTables,
		outbox:    outboxRepo,
		metrics:   m,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}
	payrollType := Type(strings.ToUpper(req.Type))
	if !payrollType.Valid() {
		return PayrollResponse{}, payrollerrors.ErrInvalidType
	}
	startDate, endDate, paymentDate, err := parsePeriod(req.StartDate, req.EndDate, req.PaymentDate)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForPeriod(ctx, companyID, req.ReferenceMonth, req.ReferenceYear, payrollType)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		return PayrollResponse{}, payrollerrors.ErrPayrollAlreadyExists
	}

	payroll := &Payroll{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		ReferenceMonth:    req.ReferenceMonth,
		ReferenceYear:     req.ReferenceYear,
		Type:              payrollType,
		StartDate:         startDate,
		EndDate:           endDate,
		PaymentDate:       paymentDate,
		Status:            StatusDraft,
		Description:       strings.TrimSpace(req.Description),
		TotalEarnings:     decimal.Zero,
		TotalDeductions:   decimal.Zero,
		NetAmount:         decimal.Zero,
		TotalEmployerInss: decimal.Zero,
		TotalFgts:         decimal.Zero,
		CreatedBy:         actorUUID,
	}
	if err := qtx.Create(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll created",
		zap.String("payroll_id", payroll.ID.String()),
		zap.Int("reference_month", payroll.ReferenceMonth),
		zap.Int("reference_year", payroll.ReferenceYear),
		zap.String("type", string(payroll.Type)),
	)
	return mapToResponse(*payroll, nil), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter GetPayrollsFilterRequest,
) ([]PayrollResponse, error) {
	listFilter := ListFilter{
		Status: Status(strings.ToUpper(strings.TrimSpace(filter.Status))),
		Type:   Type(strings.ToUpper(strings.TrimSpace(filter.Type))),
		Year:   filter.Year,
		Month:  filter.Month,
	}
	if listFilter.Status != "" && !listFilter.Status.Valid() {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}
	if listFilter.Type != "" && !listFilter.Type.Valid() {
		return nil, payrollerrors.ErrInvalidType
	}

	payrolls, err := s.repo.FindAll(ctx, companyID, listFilter)
	if err != nil {
		return nil, err
	}

	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p, nil)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	items, err := s.repo.FindItems(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*payroll, items), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if payroll.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrUpdateOnlyDraft
	}

	start := payroll.StartDate.Format(dateLayout)
	end := payroll.EndDate.Format(dateLayout)
	payment := payroll.PaymentDate.Format(dateLayout)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if req.PaymentDate != nil {
		payment = *req.PaymentDate
	}
	payroll.StartDate, payroll.EndDate, payroll.PaymentDate, err = parsePeriod(start, end, payment)
	if err != nil {
		return PayrollResponse{}, err
	}
	if req.Description != nil {
		payroll.Description = strings.TrimSpace(*req.Description)
	}

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*payroll, nil), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if payroll.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll deleted", zap.String("payroll_id", id))
	return nil
}

// Calculate regenerates every item from current employee and earning data.
// Item deletion, insertion, the header update and the outbox event commit
// together or not at all.
func (s *service) Calculate(ctx context.Context, companyID, actorID, id string) (resp PayrollResponse, err error) {
	started := s.now()
	itemCount := 0
	defer func() {
		s.metrics.ObserveCalculation(started, itemCount, err)
	}()

	log := contextutil.GetLogger(ctx, s.logger)

	current, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !current.Status.Editable() {
		return PayrollResponse{}, payrollerrors.ErrCalculateNotAllowed
	}

	tables, err := s.resolveTaxTables(ctx, companyID, current.ReferenceYear, current.ReferenceMonth)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !payroll.Status.Editable() {
		return PayrollResponse{}, payrollerrors.ErrCalculateNotAllowed
	}

	employees, err := s.employees.WithTx(tx).FindActiveForPeriod(ctx, companyID, payroll.StartDate, payroll.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}
	earningRepo := s.earnings.WithTx(tx)
	earnings, err := earningRepo.FindActiveEarningsForPeriod(ctx, companyID, payroll.StartDate, payroll.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}
	deductions, err := earningRepo.FindActiveDeductionsForPeriod(ctx, companyID, payroll.StartDate, payroll.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}

	earningsByEmployee := groupByEmployee(earnings)
	deductionsByEmployee := groupByEmployee(deductions)

	items := make([]PayrollItem, 0, len(employees))
	for _, emp := range employees {
		items = append(items, computeItem(payroll, emp, earningsByEmployee[emp.ID], deductionsByEmployee[emp.ID], tables))
	}
	itemCount = len(items)

	if err := qtx.DeleteItems(ctx, id); err != nil {
		return PayrollResponse{}, err
	}
	if err := qtx.CreateItems(ctx, items); err != nil {
		return PayrollResponse{}, err
	}

	from := payroll.Status
	now := s.now()
	payroll.ApplyTotals(items)
	payroll.Status = StatusCalculated
	payroll.CalculatedAt = &now
	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.writeStatusEvent(ctx, tx, payroll, from, actorID, events.EventPayrollCalculated); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	s.metrics.ObserveTransition(string(from), string(payroll.Status))

	log.Info("payroll calculated",
		zap.String("payroll_id", id),
		zap.Int("employees", len(items)),
		zap.String("total_earnings", payroll.TotalEarnings.StringFixed(2)),
		zap.String("net_amount", payroll.NetAmount.StringFixed(2)),
		zap.Bool("inss_table", tables.inss != nil),
		zap.Bool("irrf_table", tables.irrf != nil),
		zap.Bool("fgts_table", tables.fgts != nil),
	)
	return mapToResponse(*payroll, items), nil
}

func (s *service) Approve(ctx context.Context, companyID, approverID, id string) (PayrollResponse, error) {
	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	return s.transition(ctx, companyID, approverID, id, events.EventPayrollApproved, func(p *Payroll, now time.Time) error {
		if p.Status != StatusCalculated {
			return payrollerrors.ErrApproveOnlyCalculated
		}
		p.Status = StatusApproved
		p.ApprovedBy = &approverUUID
		p.ApprovedAt = &now
		return nil
	})
}

func (s *service) Pay(ctx context.Context, companyID, actorID, id string) (PayrollResponse, error) {
	return s.transition(ctx, companyID, actorID, id, events.EventPayrollPaid, func(p *Payroll, now time.Time) error {
		if p.Status != StatusApproved {
			return payrollerrors.ErrPayOnlyApproved
		}
		p.Status = StatusPaid
		p.PaidAt = &now
		return nil
	})
}

// transition locks the payroll, applies the change and records the event in
// one transaction. Nothing is written when apply rejects the current status.
func (s *service) transition(
	ctx context.Context,
	companyID, actorID, id, eventType string,
	apply func(p *Payroll, now time.Time) error,
) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	from := payroll.Status
	if err := apply(payroll, s.now()); err != nil {
		return PayrollResponse{}, err
	}
	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, err
	}
	if err := s.writeStatusEvent(ctx, tx, payroll, from, actorID, eventType); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	s.metrics.ObserveTransition(string(from), string(payroll.Status))

	contextutil.GetLogger(ctx, s.logger).Info("payroll status changed",
		zap.String("payroll_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(payroll.Status)),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*payroll, nil), nil
}

func (s *service) GetItems(ctx context.Context, companyID, id string) ([]PayrollItemResponse, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return nil, mapRepositoryError(err)
	}
	items, err := s.repo.FindItems(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return mapItemsToResponse(items), nil
}

func (s *service) AddOrUpdateItem(
	ctx context.Context,
	companyID, id, employeeID string,
	req UpsertItemRequest,
) (PayrollItemResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayrollItemResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	earningEntries, err := toEntries(req.Earnings)
	if err != nil {
		return PayrollItemResponse{}, err
	}
	deductionEntries, err := toEntries(req.Deductions)
	if err != nil {
		return PayrollItemResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollItemResponse{}, mapRepositoryError(err)
	}
	if !payroll.Status.Editable() {
		return PayrollItemResponse{}, payrollerrors.ErrItemsLocked
	}

	emp, err := s.employees.WithTx(tx).FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollItemResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollItemResponse{}, err
	}

	item, err := qtx.FindItem(ctx, id, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return PayrollItemResponse{}, err
	}
	if item == nil {
		item = &PayrollItem{
			ID:           uuid.New(),
			PayrollID:    payroll.ID,
			CompanyID:    payroll.CompanyID,
			EmployeeID:   emp.ID,
			BaseSalary:   emp.Salary.Round(2),
			EmployerInss: decimal.Zero,
			FgtsAmount:   decimal.Zero,
		}
	}
	item.Earnings = datatypes.JSONSlice[ItemEntry](earningEntries)
	item.Deductions = datatypes.JSONSlice[ItemEntry](deductionEntries)
	item.Notes = strings.TrimSpace(req.Notes)
	item.Recompute()

	if err := qtx.SaveItem(ctx, item); err != nil {
		return PayrollItemResponse{}, err
	}
	if err := s.recalculateTotals(ctx, qtx, companyID, payroll); err != nil {
		return PayrollItemResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollItemResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("payroll item updated",
		zap.String("payroll_id", id),
		zap.String("employee_id", employeeID),
		zap.String("net_amount", item.NetAmount.StringFixed(2)),
	)
	item.EmployeeName = emp.FullName
	item.RegistrationNumber = emp.RegistrationNumber
	return mapItemToResponse(*item), nil
}

func (s *service) RemoveItem(ctx context.Context, companyID, id, employeeID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !payroll.Status.Editable() {
		return payrollerrors.ErrItemsLocked
	}
	if err := qtx.DeleteItem(ctx, id, employeeID); err != nil {
		return mapItemError(err)
	}
	if err := s.recalculateTotals(ctx, qtx, companyID, payroll); err != nil {
		return err
	}
	return tx.Commit()
}

// recalculateTotals re-sums every stored item into the payroll header.
func (s *service) recalculateTotals(ctx context.Context, qtx Repository, companyID string, payroll *Payroll) error {
	items, err := qtx.FindItems(ctx, companyID, payroll.ID.String())
	if err != nil {
		return err
	}
	payroll.ApplyTotals(items)
	return qtx.Update(ctx, payroll)
}

func (s *service) GetBreakdown(ctx context.Context, companyID, id string) (PayrollBreakdownResponse, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollBreakdownResponse{}, mapRepositoryError(err)
	}
	items, err := s.repo.FindItems(ctx, companyID, id)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}

	earnings := newLineAccumulator()
	deductions := newLineAccumulator()
	centers := make(map[string]*CostCenterTotal)
	var centerOrder []string

	for _, item := range items {
		for _, e := range item.Earnings {
			earnings.add(e)
		}
		for _, d := range item.Deductions {
			deductions.add(d)
		}

		key := ""
		if item.CostCenterID != nil {
			key = item.CostCenterID.String()
		}
		total, ok := centers[key]
		if !ok {
			total = &CostCenterTotal{
				CostCenterID:   key,
				CostCenterName: item.CostCenterName,
				TotalEarnings:  decimal.Zero,
				NetAmount:      decimal.Zero,
			}
			centers[key] = total
			centerOrder = append(centerOrder, key)
		}
		total.EmployeeCount++
		total.TotalEarnings = total.TotalEarnings.Add(item.TotalEarnings)
		total.NetAmount = total.NetAmount.Add(item.NetAmount)
	}

	sort.Strings(centerOrder)
	costCenters := make([]CostCenterTotal, 0, len(centerOrder))
	for _, key := range centerOrder {
		costCenters = append(costCenters, *centers[key])
	}

	return PayrollBreakdownResponse{
		PayrollID:     payroll.ID.String(),
		Earnings:      earnings.lines(),
		Deductions:    deductions.lines(),
		CostCenters:   costCenters,
		TotalEmployer: payroll.TotalEmployerInss.Add(payroll.TotalFgts),
	}, nil
}

func (s *service) resolveTaxTables(ctx context.Context, companyID string, year, month int) (taxTables, error) {
	var tables taxTables
	var err error
	if tables.inss, err = s.taxTables.GetActiveTable(ctx, companyID, taxtable.KindINSS, year, month); err != nil {
		return taxTables{}, err
	}
	if tables.irrf, err = s.taxTables.GetActiveTable(ctx, companyID, taxtable.KindIRRF, year, month); err != nil {
		return taxTables{}, err
	}
	if tables.fgts, err = s.taxTables.GetActiveTable(ctx, companyID, taxtable.KindFGTS, year, month); err != nil {
		return taxTables{}, err
	}
	return tables, nil
}

func (s *service) writeStatusEvent(
	ctx context.Context,
	tx *sql.Tx,
	payroll *Payroll,
	from Status,
	actorID, eventType string,
) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(rid, "payroll", payroll.ID.String(), eventType, events.PayrollLifecycleTopic,
		events.PayrollStatusChangedEvent{
			EventType:       eventType,
			RequestID:       rid,
			PayrollID:       payroll.ID.String(),
			CompanyID:       payroll.CompanyID.String(),
			ReferenceMonth:  payroll.ReferenceMonth,
			ReferenceYear:   payroll.ReferenceYear,
			Type:            string(payroll.Type),
			FromStatus:      string(from),
			ToStatus:        string(payroll.Status),
			EmployeeCount:   payroll.EmployeeCount,
			TotalEarnings:   payroll.TotalEarnings.StringFixed(2),
			TotalDeductions: payroll.TotalDeductions.StringFixed(2),
			NetAmount:       payroll.NetAmount.StringFixed(2),
			ActorID:         actorID,
			OccurredAt:      s.now().UTC(),
		})
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("payroll outbox persist failed",
			zap.String("payroll_id", payroll.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parsePeriod(start, end, payment string) (time.Time, time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	paymentDate, err := parseDate(payment)
	if err != nil {
		return time.Time{}, time.Time{}, time.Time{}, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}
	if !paymentDate.After(endDate) {
		return time.Time{}, time.Time{}, time.Time{}, payrollerrors.ErrInvalidPaymentDate
	}
	return startDate, endDate, paymentDate, nil
}

func toEntries(in []ItemEntryRequest) ([]ItemEntry, error) {
	out := make([]ItemEntry, 0, len(in))
	for _, e := range in {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		name := strings.TrimSpace(e.Name)
		if code == "" || name == "" || e.Value.IsNegative() {
			return nil, payrollerrors.ErrInvalidEntry
		}
		out = append(out, ItemEntry{TypeID: e.TypeID, Code: code, Name: name, Value: e.Value.Round(2)})
	}
	return out, nil
}

type lineAccumulator struct {
	order []string
	byKey map[string]*BreakdownLine
}

func newLineAccumulator() *lineAccumulator {
	return &lineAccumulator{byKey: make(map[string]*BreakdownLine)}
}

func (a *lineAccumulator) add(e ItemEntry) {
	line, ok := a.byKey[e.Code]
	if !ok {
		line = &BreakdownLine{Code: e.Code, Name: e.Name, Total: decimal.Zero}
		a.byKey[e.Code] = line
		a.order = append(a.order, e.Code)
	}
	line.Count++
	line.Total = line.Total.Add(e.Value)
}

func (a *lineAccumulator) lines() []BreakdownLine {
	sort.Strings(a.order)
	out := make([]BreakdownLine, 0, len(a.order))
	for _, code := range a.order {
		out = append(out, *a.byKey[code])
	}
	return out
}

func mapToResponse(p Payroll, items []PayrollItem) PayrollResponse {
	resp := PayrollResponse{
		ID:                p.ID.String(),
		CompanyID:         p.CompanyID.String(),
		ReferenceMonth:    p.ReferenceMonth,
		ReferenceYear:     p.ReferenceYear,
		Type:              p.Type,
		StartDate:         p.StartDate.Format(dateLayout),
		EndDate:           p.EndDate.Format(dateLayout),
		PaymentDate:       p.PaymentDate.Format(dateLayout),
		Status:            p.Status,
		Description:       p.Description,
		TotalEarnings:     p.TotalEarnings,
		TotalDeductions:   p.TotalDeductions,
		NetAmount:         p.NetAmount,
		TotalEmployerInss: p.TotalEmployerInss,
		TotalFgts:         p.TotalFgts,
		EmployeeCount:     p.EmployeeCount,
		CreatedBy:         p.CreatedBy.String(),
		CalculatedAt:      p.CalculatedAt,
		ApprovedAt:        p.ApprovedAt,
		PaidAt:            p.PaidAt,
	}
	if p.ApprovedBy != nil {
		v := p.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if items != nil {
		resp.Items = mapItemsToResponse(items)
	}
	return resp
}

func mapItemToResponse(item PayrollItem) PayrollItemResponse {
	return PayrollItemResponse{
		ID:                 item.ID.String(),
		EmployeeID:         item.EmployeeID.String(),
		EmployeeName:       item.EmployeeName,
		RegistrationNumber: item.RegistrationNumber,
		CostCenterName:     item.CostCenterName,
		BaseSalary:         item.BaseSalary,
		Earnings:           orEmpty(item.Earnings),
		Deductions:         orEmpty(item.Deductions),
		TotalEarnings:      item.TotalEarnings,
		TotalDeductions:    item.TotalDeductions,
		NetAmount:          item.NetAmount,
		EmployerInss:       item.EmployerInss,
		FgtsAmount:         item.FgtsAmount,
		Notes:              item.Notes,
	}
}

func mapItemsToResponse(items []PayrollItem) []PayrollItemResponse {
	resp := make([]PayrollItemResponse, len(items))
	for i, item := range items {
		resp[i] = mapItemToResponse(item)
	}
	return resp
}
