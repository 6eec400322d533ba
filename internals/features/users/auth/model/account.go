package model

// Account adalah kontrak seragam tiga varian akun (USER/ADMIN/SUPERADMIN).
// Sumber lama menduplikasi alur signin per role; di sini cukup satu alur
// yang bekerja di atas interface ini.
type Account interface {
	AccountEmail() string
	AccountName() string
	PasswordDigest() string
}
