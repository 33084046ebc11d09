package jurnal

import "time"

// Jurnal is one student's activity journal entry for one PKL day.
type Jurnal struct {
	ID             string
	SiswaID        string
	Tanggal        time.Time
	Kegiatan       string
	DokumentasiURL *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / join
	SiswaName *string
	Komentar  []Komentar
}

// Komentar is a supervising teacher's comment on a journal entry.
type Komentar struct {
	ID        string
	JurnalID  string
	GuruID    string
	Isi       string
	CreatedAt time.Time

	// DTO / join
	GuruName *string
}
