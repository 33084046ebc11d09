package jurnal

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkl-smk/pkl-backend-go/internal/domain/jurnal"
	"github.com/pkl-smk/pkl-backend-go/internal/domain/user"
)

type fakeJurnalRepo struct {
	mu       sync.Mutex
	seq      int
	entries  map[string]jurnal.Jurnal
	comments map[string][]jurnal.Komentar
}

func newFakeJurnalRepo() *fakeJurnalRepo {
	return &fakeJurnalRepo{
		entries:  make(map[string]jurnal.Jurnal),
		comments: make(map[string][]jurnal.Komentar),
	}
}

func (r *fakeJurnalRepo) Create(ctx context.Context, j jurnal.Jurnal) (jurnal.Jurnal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	j.ID = fmt.Sprintf("jurnal-%d", r.seq)
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	r.entries[j.ID] = j
	return j, nil
}

func (r *fakeJurnalRepo) GetByID(ctx context.Context, id string) (jurnal.Jurnal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.entries[id]
	if !ok {
		return jurnal.Jurnal{}, pgx.ErrNoRows
	}
	j.Komentar = r.comments[id]
	return j, nil
}

func (r *fakeJurnalRepo) GetBySiswaAndDate(ctx context.Context, siswaID string, tanggal string) (jurnal.Jurnal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.entries {
		if j.SiswaID == siswaID && j.Tanggal.Format("2006-01-02") == tanggal {
			return j, nil
		}
	}
	return jurnal.Jurnal{}, pgx.ErrNoRows
}

func (r *fakeJurnalRepo) Update(ctx context.Context, j jurnal.Jurnal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.entries[j.ID]
	stored.Kegiatan = j.Kegiatan
	stored.UpdatedAt = time.Now()
	r.entries[j.ID] = stored
	return nil
}

func (r *fakeJurnalRepo) ListBySiswa(ctx context.Context, siswaID string, filter jurnal.ListFilter) ([]jurnal.Jurnal, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []jurnal.Jurnal
	for _, j := range r.entries {
		if j.SiswaID == siswaID {
			out = append(out, j)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJurnalRepo) ListByGuru(ctx context.Context, guruID string, filter jurnal.ListFilter) ([]jurnal.Jurnal, int64, error) {
	return nil, 0, nil
}

func (r *fakeJurnalRepo) AddComment(ctx context.Context, k jurnal.Komentar) (jurnal.Komentar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	k.ID = fmt.Sprintf("komentar-%d", r.seq)
	k.CreatedAt = time.Now()
	r.comments[k.JurnalID] = append(r.comments[k.JurnalID], k)
	return k, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListSiswaByGuru(ctx context.Context, guruID string) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) CountSiswa(ctx context.Context) (int64, error) { return 0, nil }

func (r *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

type fakeFileService struct{}

func (fakeFileService) UploadJurnalDokumentasi(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	return "http://localhost:8080/uploads/jurnal/fake.jpg", nil
}

func guruOf(guruID string) *string { return &guruID }

func testUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{
		"siswa-1": {ID: "siswa-1", Role: user.RoleSiswa, GuruID: guruOf("guru-1")},
		"siswa-2": {ID: "siswa-2", Role: user.RoleSiswa, GuruID: guruOf("guru-2")},
		"guru-1":  {ID: "guru-1", Role: user.RoleGuru},
	}}
}

func ctxAs(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateJurnal(t *testing.T) {
	t.Parallel()

	repo := newFakeJurnalRepo()
	svc := NewJurnalService(repo, testUsers(), fakeFileService{})
	ctx := ctxAs(t, "siswa-1", user.RoleSiswa)

	resp, err := svc.Create(ctx, jurnal.CreateJurnalRequest{
		Tanggal:  "2026-03-02",
		Kegiatan: "Membuat halaman login untuk aplikasi kasir",
	})
	require.NoError(t, err)
	assert.Equal(t, "siswa-1", resp.SiswaID)
	assert.Equal(t, "2026-03-02", resp.Tanggal)

	_, err = svc.Create(ctx, jurnal.CreateJurnalRequest{
		Tanggal:  "2026-03-02",
		Kegiatan: "Melanjutkan halaman login untuk aplikasi kasir",
	})
	assert.ErrorIs(t, err, jurnal.ErrJurnalExistsForDate)
}

func TestCreateJurnalValidation(t *testing.T) {
	t.Parallel()

	svc := NewJurnalService(newFakeJurnalRepo(), testUsers(), fakeFileService{})
	ctx := ctxAs(t, "siswa-1", user.RoleSiswa)

	_, err := svc.Create(ctx, jurnal.CreateJurnalRequest{Tanggal: "02-03-2026", Kegiatan: "short"})
	assert.Error(t, err)
}

func TestUpdateJurnalOwnership(t *testing.T) {
	t.Parallel()

	repo := newFakeJurnalRepo()
	svc := NewJurnalService(repo, testUsers(), fakeFileService{})

	created, err := svc.Create(ctxAs(t, "siswa-1", user.RoleSiswa), jurnal.CreateJurnalRequest{
		Tanggal:  "2026-03-02",
		Kegiatan: "Membuat halaman login untuk aplikasi kasir",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctxAs(t, "siswa-2", user.RoleSiswa), jurnal.UpdateJurnalRequest{
		ID:       created.ID,
		Kegiatan: "Mencoba mengubah jurnal milik orang lain",
	})
	assert.ErrorIs(t, err, jurnal.ErrNotOwner)

	updated, err := svc.Update(ctxAs(t, "siswa-1", user.RoleSiswa), jurnal.UpdateJurnalRequest{
		ID:       created.ID,
		Kegiatan: "Merapikan halaman login untuk aplikasi kasir",
	})
	require.NoError(t, err)
	assert.Equal(t, "Merapikan halaman login untuk aplikasi kasir", updated.Kegiatan)
}

func TestCommentRequiresSupervision(t *testing.T) {
	t.Parallel()

	repo := newFakeJurnalRepo()
	svc := NewJurnalService(repo, testUsers(), fakeFileService{})

	created, err := svc.Create(ctxAs(t, "siswa-2", user.RoleSiswa), jurnal.CreateJurnalRequest{
		Tanggal:  "2026-03-02",
		Kegiatan: "Membuat laporan harian kegiatan magang",
	})
	require.NoError(t, err)

	// guru-1 does not supervise siswa-2
	_, err = svc.Comment(ctxAs(t, "guru-1", user.RoleGuru), jurnal.CommentRequest{
		JurnalID: created.ID,
		Isi:      "Bagus, lanjutkan",
	})
	assert.ErrorIs(t, err, jurnal.ErrNotSupervisor)
}

func TestCommentAppended(t *testing.T) {
	t.Parallel()

	repo := newFakeJurnalRepo()
	svc := NewJurnalService(repo, testUsers(), fakeFileService{})

	created, err := svc.Create(ctxAs(t, "siswa-1", user.RoleSiswa), jurnal.CreateJurnalRequest{
		Tanggal:  "2026-03-02",
		Kegiatan: "Membuat laporan harian kegiatan magang",
	})
	require.NoError(t, err)

	resp, err := svc.Comment(ctxAs(t, "guru-1", user.RoleGuru), jurnal.CommentRequest{
		JurnalID: created.ID,
		Isi:      "Bagus, lanjutkan",
	})
	require.NoError(t, err)
	require.Len(t, resp.Komentar, 1)
	assert.Equal(t, "guru-1", resp.Komentar[0].GuruID)
}

func TestGetJurnalAccess(t *testing.T) {
	t.Parallel()

	repo := newFakeJurnalRepo()
	svc := NewJurnalService(repo, testUsers(), fakeFileService{})

	created, err := svc.Create(ctxAs(t, "siswa-1", user.RoleSiswa), jurnal.CreateJurnalRequest{
		Tanggal:  "2026-03-02",
		Kegiatan: "Membuat laporan harian kegiatan magang",
	})
	require.NoError(t, err)

	// owner, supervising teacher and admin may read
	for _, tc := range []struct {
		userID string
		role   user.Role
	}{
		{"siswa-1", user.RoleSiswa},
		{"guru-1", user.RoleGuru},
		{"admin-1", user.RoleAdmin},
	} {
		_, err := svc.Get(ctxAs(t, tc.userID, tc.role), created.ID)
		assert.NoError(t, err, "role %s", tc.role)
	}

	_, err = svc.Get(ctxAs(t, "siswa-2", user.RoleSiswa), created.ID)
	assert.ErrorIs(t, err, jurnal.ErrNotOwner)

	_, err = svc.Get(ctxAs(t, "siswa-1", user.RoleSiswa), "missing")
	assert.ErrorIs(t, err, jurnal.ErrJurnalNotFound)
}
