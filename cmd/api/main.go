package main

import (
	"fmt"
	"net/http"

	"github.com/workpoint-hr/hrm-backend-go/internal/config"
	appHTTP "github.com/workpoint-hr/hrm-backend-go/internal/handler/http"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/database"
	"github.com/workpoint-hr/hrm-backend-go/internal/pkg/jwt"
	"github.com/workpoint-hr/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpoint-hr/hrm-backend-go/internal/service/attendance"
	authService "github.com/workpoint-hr/hrm-backend-go/internal/service/auth"
	employeeService "github.com/workpoint-hr/hrm-backend-go/internal/service/employee"
	leaveService "github.com/workpoint-hr/hrm-backend-go/internal/service/leave"
	payrollService "github.com/workpoint-hr/hrm-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		txManager,
		attendanceRepo,
		employeeRepo,
		leaveRequestRepo,
		leaveBalanceRepo,
		cfg.Attendance.StandardShiftHours,
		cfg.Leave,
	)
	leaveSvc := leaveService.NewLeaveService(
		txManager,
		leaveRequestRepo,
		leaveBalanceRepo,
		employeeRepo,
		cfg.Leave,
	)
	payrollSvc := payrollService.NewPayrollService(salaryRepo, attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
