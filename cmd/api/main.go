package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/chronoshq/timeclock-backend-go/internal/config"
	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	appHTTP "github.com/chronoshq/timeclock-backend-go/internal/handler/http"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/database"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/chronoshq/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/chronoshq/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/chronoshq/timeclock-backend-go/internal/service/employee"
	punchService "github.com/chronoshq/timeclock-backend-go/internal/service/punch"
	reconcileService "github.com/chronoshq/timeclock-backend-go/internal/service/reconcile"
	shiftService "github.com/chronoshq/timeclock-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shiftRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	punchSvc := punchService.NewPunchService(db, punchRepo, employeeRepo)
	reconcileSvc := reconcileService.NewReconcileService(db, employeeRepo, shiftRepo, punchRepo, reconcile.Config{
		ToleranceMinutes:    cfg.Reconcile.ToleranceMinutes,
		DefaultDailyMinutes: cfg.Reconcile.DefaultDailyMinutes,
	})

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reconcileSvc)

	router := appHTTP.NewRouter(cfg.App, jwtService, authHandler, employeeHandler, shiftHandler, punchHandler, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
