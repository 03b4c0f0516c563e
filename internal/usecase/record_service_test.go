package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/record-store/internal/domain"
	"github.com/Gunvolt24/record-store/internal/ports/mocks"
	"github.com/Gunvolt24/record-store/internal/usecase"
	"github.com/Gunvolt24/record-store/pkg/validate"
	"github.com/golang/mock/gomock"
)

const mbidAbbey = "d6010be3-98f8-422c-a6c9-787e2e491e58"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func recordData() domain.RecordData {
	return domain.RecordData{
		Artist:   "The Beatles",
		Album:    "Abbey Road",
		Price:    29.99,
		Qty:      5,
		Format:   domain.FormatVinyl,
		Category: domain.CategoryRock,
	}
}

func TestCreate_EnrichesTracklist(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	data := recordData()
	data.MBID = mbidAbbey
	titles := []string{"Come Together", "Something"}

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.RecordData{})).Return(nil),
		tracks.EXPECT().Fetch(gomock.Any(), mbidAbbey).Return(titles, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got domain.RecordData) (*domain.Record, error) {
				if len(got.Tracklist) != 2 || got.Tracklist[0] != "Come Together" {
					t.Fatalf("tracklist not enriched: %+v", got.Tracklist)
				}
				return &domain.Record{ID: 1, Artist: got.Artist, Album: got.Album, Tracklist: got.Tracklist}, nil
			}),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	rec, err := svc.Create(context.Background(), data)
	if err != nil || rec == nil || rec.ID != 1 {
		t.Fatalf("unexpected result: rec=%+v err=%v", rec, err)
	}
}

func TestCreate_TracklistFetchFailed_EmptyTracklist(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	data := recordData()
	data.MBID = mbidAbbey

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		tracks.EXPECT().Fetch(gomock.Any(), mbidAbbey).Return(nil, errors.New("musicbrainz down")),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got domain.RecordData) (*domain.Record, error) {
				if got.Tracklist == nil || len(got.Tracklist) != 0 {
					t.Fatalf("want empty tracklist, got %+v", got.Tracklist)
				}
				return &domain.Record{ID: 2}, nil
			}),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.Create(context.Background(), data); err != nil {
		t.Fatalf("fetch failure must not block create, got %v", err)
	}
}

func TestCreate_NoMBID_SkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	tracks.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Record{ID: 3}, nil)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.Create(context.Background(), recordData()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreate_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidRecord)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	_, err := svc.Create(context.Background(), domain.RecordData{})
	if !errors.Is(err, validate.ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord, got %v", err)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateRecord)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	_, err := svc.Create(context.Background(), recordData())
	if !errors.Is(err, domain.ErrDuplicateRecord) {
		t.Fatalf("want ErrDuplicateRecord, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, domain.ErrRecordNotFound)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	_, err := svc.Update(context.Background(), 42, recordData())
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestUpdate_SameMBID_KeepsTracklist(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	existing := &domain.Record{ID: 7, MBID: mbidAbbey, Tracklist: []string{"Come Together"}}
	data := recordData()
	data.MBID = mbidAbbey

	tracks.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(0)
	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil),
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, id int64, got domain.RecordData) (*domain.Record, error) {
				if len(got.Tracklist) != 1 || got.Tracklist[0] != "Come Together" {
					t.Fatalf("tracklist must be kept, got %+v", got.Tracklist)
				}
				return &domain.Record{ID: id}, nil
			}),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.Update(context.Background(), 7, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdate_NewMBID_Refetches(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	existing := &domain.Record{ID: 7, MBID: "old-mbid", Tracklist: []string{"Old Track"}}
	data := recordData()
	data.MBID = mbidAbbey

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil),
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		tracks.EXPECT().Fetch(gomock.Any(), mbidAbbey).Return([]string{"Something"}, nil),
		repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, id int64, got domain.RecordData) (*domain.Record, error) {
				if len(got.Tracklist) != 1 || got.Tracklist[0] != "Something" {
					t.Fatalf("tracklist must be refetched, got %+v", got.Tracklist)
				}
				return &domain.Record{ID: id}, nil
			}),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.Update(context.Background(), 7, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdate_NewMBID_FetchFailed_KeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	existing := &domain.Record{ID: 7, MBID: "old-mbid", Tracklist: []string{"Old Track"}}
	data := recordData()
	data.MBID = mbidAbbey

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil),
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		tracks.EXPECT().Fetch(gomock.Any(), mbidAbbey).Return(nil, errors.New("timeout")),
		repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, id int64, got domain.RecordData) (*domain.Record, error) {
				if len(got.Tracklist) != 1 || got.Tracklist[0] != "Old Track" {
					t.Fatalf("previous tracklist must be kept, got %+v", got.Tracklist)
				}
				return &domain.Record{ID: id}, nil
			}),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.Update(context.Background(), 7, data); err != nil {
		t.Fatalf("fetch failure must not block update, got %v", err)
	}
}

func makeRecords(ids ...int64) []*domain.Record {
	out := make([]*domain.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, &domain.Record{ID: id})
	}
	return out
}

func TestList_TruncatesAndSetsCursor(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	// запрошено 2 — репозиторий зовётся с 3, лишняя строка отбрасывается.
	repo.EXPECT().
		ListFiltered(gomock.Any(), gomock.Any(), 3, int64(10)).
		Return(makeRecords(11, 12, 13), nil)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	page, err := svc.List(context.Background(), domain.ListQuery{Limit: 2, Cursor: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 2 || page.Data[1].ID != 12 {
		t.Fatalf("want truncated page [11 12], got %+v", page.Data)
	}
	if !page.HasNextPage || page.NextCursor == nil || *page.NextCursor != "12" {
		t.Fatalf("want hasNextPage with cursor 12, got next=%v has=%v", page.NextCursor, page.HasNextPage)
	}
}

func TestList_LastPage_NoCursor(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repo.EXPECT().
		ListFiltered(gomock.Any(), gomock.Any(), 6, int64(0)).
		Return(makeRecords(1, 2, 3), nil)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	page, err := svc.List(context.Background(), domain.ListQuery{Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 3 || page.HasNextPage || page.NextCursor != nil {
		t.Fatalf("want last page without cursor, got %+v", page)
	}
}

func TestList_DefaultAndMaxLimit(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	gomock.InOrder(
		repo.EXPECT().ListFiltered(gomock.Any(), gomock.Any(), 11, int64(0)).Return(nil, nil),
		repo.EXPECT().ListFiltered(gomock.Any(), gomock.Any(), 101, int64(0)).Return(nil, nil),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.List(context.Background(), domain.ListQuery{Limit: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(context.Background(), domain.ListQuery{Limit: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_EmptyPage_NotNil(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repo.EXPECT().ListFiltered(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	page, err := svc.List(context.Background(), domain.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Data == nil || len(page.Data) != 0 {
		t.Fatalf("want empty non-nil data, got %+v", page.Data)
	}
}

func TestList_RepoErr(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repoErr := errors.New("DB down")
	repo.EXPECT().ListFiltered(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, repoErr)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if _, err := svc.List(context.Background(), domain.ListQuery{}); !errors.Is(err, repoErr) {
		t.Fatalf("want repo error, got %v", err)
	}
}

func TestCreateFromMessage_InvalidJson(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	err := svc.CreateFromMessage(context.Background(), []byte("{"))
	if !errors.Is(err, validate.ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord (permanent), got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("want invalid json cause, got %v", err)
	}
}

func TestCreateFromMessage_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	err := svc.CreateFromMessage(context.Background(), []byte(`{"artist":"a","bogus":1}`))
	if !errors.Is(err, validate.ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord (permanent), got %v", err)
	}
}

func TestCreateFromMessage_TrailingData(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	data := recordData()
	base, err1 := json.Marshal(&data)
	if err1 != nil {
		t.Fatalf("unexpected error: %v", err1)
	}
	raw := append([]byte{}, base...)
	raw = append(raw, []byte(" {}")...)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	err2 := svc.CreateFromMessage(context.Background(), raw)
	if !errors.Is(err2, validate.ErrInvalidRecord) {
		t.Fatalf("want ErrInvalidRecord (permanent), got %v", err2)
	}
	if !strings.Contains(err2.Error(), "trailing data") {
		t.Fatalf("want trailing data cause, got %v", err2)
	}
}

func TestCreateFromMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRecordRepository(ctrl)
	tracks := mocks.NewMockTracklistFetcher(ctrl)
	validator := mocks.NewMockRecordValidator(ctrl)

	data := recordData()
	raw, err1 := json.Marshal(&data)
	if err1 != nil {
		t.Fatalf("unexpected error: %v", err1)
	}

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Record{ID: 1}, nil),
	)

	svc := usecase.NewRecordService(repo, tracks, validator, noopLogger{})
	if err := svc.CreateFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
