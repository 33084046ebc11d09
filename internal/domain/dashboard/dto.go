package dashboard

// DailyCount is one day's attendance tally for the trend chart.
type DailyCount struct {
	Tanggal   string `json:"tanggal"`
	Hadir     int64  `json:"hadir"`
	Terlambat int64  `json:"terlambat"`
	Absen     int64  `json:"absen"`
}

// AdminStatsResponse aggregates today's numbers for the admin dashboard.
type AdminStatsResponse struct {
	TotalSiswa       int64        `json:"total_siswa"`
	HadirHariIni     int64        `json:"hadir_hari_ini"`
	TerlambatHariIni int64        `json:"terlambat_hari_ini"`
	AbsenHariIni     int64        `json:"absen_hari_ini"`
	BelumAbsen       int64        `json:"belum_absen"`
	JurnalHariIni    int64        `json:"jurnal_hari_ini"`
	TrenKehadiran    []DailyCount `json:"tren_kehadiran"`
}
