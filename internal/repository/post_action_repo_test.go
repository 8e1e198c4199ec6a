package repository

import (
	"Viewy/internal/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestCreateReport(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostActionRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reports`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `posts` SET `report_count`=report_count + ? WHERE id = ?")).
		WithArgs(1, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET `report_count`=report_count + ? WHERE id = ?")).
		WithArgs(1, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	report := &model.Report{ReporterID: 4, PostID: 9, Reason: "spam", CreatedAt: time.Now()}
	if err := repo.CreateReport(context.Background(), report); err != nil {
		t.Fatalf("CreateReport: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateReportDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostActionRepo(db)

	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `reports`")).WillReturnError(dup)
	// counters stay untouched
	mock.ExpectRollback()

	err := repo.CreateReport(context.Background(), &model.Report{ReporterID: 4, PostID: 9})
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) || myErr.Number != 1062 {
		t.Fatalf("CreateReport err = %v, want duplicate key", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetFavoritedPostIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostActionRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT `favorites`.`post_id` FROM `favorites` JOIN posts ON posts.id = favorites.post_id " +
			"WHERE favorites.user_id = ? AND posts.is_hidden = ? " +
			"ORDER BY favorites.created_at DESC,favorites.post_id DESC")).
		WithArgs(1, false).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(9).AddRow(4))

	ids, err := repo.GetFavoritedPostIDs(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("GetFavoritedPostIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 9 || ids[1] != 4 {
		t.Fatalf("ids = %v, want [9 4]", ids)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFilterFavoritedAndReported(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostActionRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `post_id` FROM `favorites` WHERE user_id = ? AND post_id IN (?,?,?)")).
		WithArgs(1, 3, 5, 8).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `post_id` FROM `reports` WHERE reporter_id = ? AND post_id IN (?,?,?)")).
		WithArgs(1, 3, 5, 8).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(3).AddRow(8))

	fav, err := repo.FilterFavorited(ctx, 1, []uint64{3, 5, 8})
	if err != nil || len(fav) != 1 || fav[0] != 5 {
		t.Fatalf("FilterFavorited = (%v, %v), want [5]", fav, err)
	}
	rep, err := repo.FilterReported(ctx, 1, []uint64{3, 5, 8})
	if err != nil || len(rep) != 2 {
		t.Fatalf("FilterReported = (%v, %v), want [3 8]", rep, err)
	}

	// empty pages skip the database
	if ids, err := repo.FilterFavorited(ctx, 1, nil); err != nil || len(ids) != 0 {
		t.Fatalf("FilterFavorited(nil) = (%v, %v), want empty", ids, err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
