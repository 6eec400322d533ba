package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventku_backend/internals/configs"
	eventModel "eventku_backend/internals/features/events/event/model"
	registrationModel "eventku_backend/internals/features/events/registration/model"
	settingModel "eventku_backend/internals/features/settings/setting/model"
	authModel "eventku_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, ganti host/port ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=eventku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan auto-migration untuk semua tabel inti.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.AdminModel{},
		&authModel.SuperAdminModel{},
		&eventModel.EventModel{},
		&registrationModel.RegistrationModel{},
		&registrationModel.TeamModel{},
		&settingModel.GlobalSettingModel{},
	)
}

// EnsureGlobalSetting memastikan baris singleton global_settings (id=1) ada.
// Idempotent & aman dipanggil paralel: ON CONFLICT DO NOTHING.
func EnsureGlobalSetting(db *gorm.DB) error {
	seed := settingModel.GlobalSettingModel{
		ID:                   settingModel.GlobalSettingID,
		RegistrationOpen:     true,
		GameRegistrationOpen: true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return err
	}
	log.Println("✅ Global setting siap.")
	return nil
}
