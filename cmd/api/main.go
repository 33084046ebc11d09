package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pkl-smk/pkl-backend-go/internal/config"
	appHTTP "github.com/pkl-smk/pkl-backend-go/internal/handler/http"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/cron"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/database"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/jwt"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/oauth"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/storage"
	"github.com/pkl-smk/pkl-backend-go/internal/pkg/timezone"
	"github.com/pkl-smk/pkl-backend-go/internal/repository/postgresql"
	absensiService "github.com/pkl-smk/pkl-backend-go/internal/service/absensi"
	serviceAuth "github.com/pkl-smk/pkl-backend-go/internal/service/auth"
	dashboardService "github.com/pkl-smk/pkl-backend-go/internal/service/dashboard"
	"github.com/pkl-smk/pkl-backend-go/internal/service/file"
	jurnalService "github.com/pkl-smk/pkl-backend-go/internal/service/jurnal"
	settingService "github.com/pkl-smk/pkl-backend-go/internal/service/setting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	absensiRepo := postgresql.NewAbsensiRepository(db)
	jurnalRepo := postgresql.NewJurnalRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	clock, err := timezone.NewClock(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize business clock:", err)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	settingCache := settingService.NewCache(settingRepo, cfg.Attendance.CacheTTL)

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, userRepo, JWTRepository, JWTService, GoogleService)
	settingSvc := settingService.NewSettingService(settingRepo, settingCache)
	absensiSvc := absensiService.NewAbsensiService(absensiRepo, settingCache, clock)
	jurnalSvc := jurnalService.NewJurnalService(jurnalRepo, userRepo, fileService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, userRepo, clock)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	absensiHandler := appHTTP.NewAbsensiHandler(absensiSvc)
	jurnalHandler := appHTTP.NewJurnalHandler(jurnalSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	scheduler := cron.NewScheduler()
	cron.NewAbsensiJobs(absensiRepo, settingCache, clock).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		absensiHandler,
		jurnalHandler,
		settingHandler,
		dashboardHandler,
		cfg.App.FrontendURL,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
