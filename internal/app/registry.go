package app

import (
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/company"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/costcenter"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/earning"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employee"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/employeesalary"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/messaging/kafka"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/payroll"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/rbac"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/rbac/infra"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/counter"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/shared/metrics"
	"github.com/hyagosilvaxds/backend-erp-sub001/internal/taxtable"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, deps *Infrastructure) error {
	db, gormDB, rdb, logger := deps.DB, deps.GormDB, deps.Redis, deps.Logger
	payrollMetrics := metrics.Payroll()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	costCenterRepo := costcenter.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	earningRepo := earning.NewRepository(gormDB)
	taxTableRepo := taxtable.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(deps.Config.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	companyService := company.NewService(companyRepo, logger)
	costCenterService := costcenter.NewService(db, costCenterRepo, rdb, logger)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	employeeSalaryService := employeesalary.NewService(db, employeeSalaryRepo, logger)
	earningService := earning.NewService(db, earningRepo, logger)
	taxTableService := taxtable.NewServiceWithCacheTTL(taxTableRepo, rdb, payrollMetrics, deps.Config.TaxTableCacheTTL, logger)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		employeeRepo,
		earningRepo,
		taxTableService,
		outboxRepo,
		payrollMetrics,
		logger,
	)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService, logger)
	costCenterHandler := costcenter.NewHandler(costCenterService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService, logger)
	earningHandler := earning.NewHandler(earningService, logger)
	taxTableHandler := taxtable.NewHandler(taxTableService, logger)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, rbacService)
		costcenter.RegisterRoutes(api, costCenterHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, rbacService)
		earning.RegisterRoutes(api, earningHandler, rbacService)
		taxtable.RegisterRoutes(api, taxTableHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
