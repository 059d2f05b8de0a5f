package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/entity"
	errs "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *database.TestDBManager {
	t.Helper()

	testDB := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)
	testDB.Connect(t)
	return testDB
}

func TestStudentRepository(t *testing.T) {
	testDB := setupDB(t)
	repo := repository.NewStudentRepository(testDB.Manager.DB(), testDB.Logger)
	ctx := context.Background()

	t.Run("Create assigns an ID", func(t *testing.T) {
		student := &entity.Student{FirstName: "Anu", LastName: "Ravi", Class: "2-C"}

		require.NoError(t, repo.Create(ctx, student))

		assert.NotZero(t, student.ID)
		got, err := repo.GetByID(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, "Anu", got.FirstName)
		assert.Equal(t, "2-C", got.Class)
	})

	t.Run("Upsert with explicit ID inserts then updates", func(t *testing.T) {
		student := &entity.Student{ID: 500, FirstName: "Kavin", LastName: "Kumar", Class: "3-A"}

		inserted, err := repo.Upsert(ctx, student)
		require.NoError(t, err)
		assert.True(t, inserted)

		student.Class = "4-A"
		inserted, err = repo.Upsert(ctx, student)
		require.NoError(t, err)
		assert.False(t, inserted)

		got, err := repo.GetByID(ctx, 500)
		require.NoError(t, err)
		assert.Equal(t, "4-A", got.Class)
	})

	t.Run("Identity continues after explicit IDs", func(t *testing.T) {
		require.NoError(t, repo.SyncIdentity(ctx))

		student := &entity.Student{FirstName: "Mala", LastName: "Mala", Class: "1-B"}
		require.NoError(t, repo.Create(ctx, student))
		assert.Greater(t, student.ID, uint64(500))
	})

	t.Run("Missing student", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.Equal(t, errs.ErrStudentNotFound, err)

		exists, err := repo.Exists(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, exists)

		err = repo.Update(ctx, &entity.Student{ID: 9999, FirstName: "A", LastName: "B", Class: "C"})
		assert.Equal(t, errs.ErrStudentNotFound, err)

		assert.Equal(t, errs.ErrStudentNotFound, repo.Delete(ctx, 9999))
	})

	t.Run("Update and delete", func(t *testing.T) {
		student := &entity.Student{FirstName: "Old", LastName: "Name", Class: "5-A"}
		require.NoError(t, repo.Create(ctx, student))

		student.FirstName = "New"
		require.NoError(t, repo.Update(ctx, student))
		got, err := repo.GetByID(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.FirstName)

		require.NoError(t, repo.Delete(ctx, student.ID))
		_, err = repo.GetByID(ctx, student.ID)
		assert.Equal(t, errs.ErrStudentNotFound, err)
	})

	t.Run("List is ordered by ID", func(t *testing.T) {
		students, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, students)
		for i := 1; i < len(students); i++ {
			assert.Less(t, students[i-1].ID, students[i].ID)
		}
	})
}

func TestBookRepository(t *testing.T) {
	testDB := setupDB(t)
	repo := repository.NewBookRepository(testDB.Manager.DB(), testDB.Logger)
	ctx := context.Background()

	t.Run("Create and get by barcode", func(t *testing.T) {
		book := &entity.Book{Title: "Thirukkural", Barcode: "BK001"}
		require.NoError(t, repo.Create(ctx, book))
		assert.NotZero(t, book.ID)

		got, err := repo.GetByBarcode(ctx, "BK001")
		require.NoError(t, err)
		assert.Equal(t, book.ID, got.ID)
		assert.Equal(t, "Thirukkural", got.Title)
	})

	t.Run("Duplicate barcode", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Book{Title: "Other", Barcode: "BK001"})
		assert.Equal(t, errs.ErrDuplicateBarcode, err)
	})

	t.Run("Upsert keeps the ID and replaces the title", func(t *testing.T) {
		original, err := repo.GetByBarcode(ctx, "BK001")
		require.NoError(t, err)

		book := &entity.Book{Title: "Thirukkural (2nd ed.)", Barcode: "BK001"}
		inserted, err := repo.Upsert(ctx, book)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, original.ID, book.ID)

		got, err := repo.GetByBarcode(ctx, "BK001")
		require.NoError(t, err)
		assert.Equal(t, "Thirukkural (2nd ed.)", got.Title)

		fresh := &entity.Book{Title: "Ponniyin Selvan", Barcode: "BK002"}
		inserted, err = repo.Upsert(ctx, fresh)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotZero(t, fresh.ID)
	})

	t.Run("Missing book", func(t *testing.T) {
		_, err := repo.GetByBarcode(ctx, "NOPE")
		assert.Equal(t, errs.ErrBookNotFound, err)
		assert.Equal(t, errs.ErrBookNotFound, repo.UpdateTitle(ctx, "NOPE", "x"))
		assert.Equal(t, errs.ErrBookNotFound, repo.Delete(ctx, "NOPE"))
	})

	t.Run("Update title and delete", func(t *testing.T) {
		require.NoError(t, repo.UpdateTitle(ctx, "BK002", "Ponniyin Selvan Vol 1"))
		got, err := repo.GetByBarcode(ctx, "BK002")
		require.NoError(t, err)
		assert.Equal(t, "Ponniyin Selvan Vol 1", got.Title)

		require.NoError(t, repo.Delete(ctx, "BK002"))
		books, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "BK001", books[0].Barcode)
	})
}

func TestLoanRepository(t *testing.T) {
	testDB := setupDB(t)
	repo := repository.NewLoanRepository(testDB.Manager.DB(), testDB.Logger)
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	anu := testDB.CreateTestStudent(t, "Anu", "Ravi", "2-C")
	kavin := testDB.CreateTestStudent(t, "Kavin", "Kumar", "3-A")
	book1 := testDB.CreateTestBook(t, "Thirukkural", "BK001")
	book2 := testDB.CreateTestBook(t, "Ponniyin Selvan", "BK002")

	t.Run("Create open loan", func(t *testing.T) {
		loan := &entity.Loan{StudentID: anu, BookID: book1, CheckedOutAt: now}
		require.NoError(t, repo.Create(ctx, loan))
		assert.NotZero(t, loan.ID)

		open, err := repo.HasOpenLoanForStudent(ctx, anu)
		require.NoError(t, err)
		assert.True(t, open)

		open, err = repo.HasOpenLoanForStudent(ctx, kavin)
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("Second open loan for the same book", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Loan{StudentID: kavin, BookID: book1, CheckedOutAt: now})
		assert.Equal(t, errs.ErrBookOnLoan, err)
	})

	t.Run("Second open loan for the same student", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Loan{StudentID: anu, BookID: book2, CheckedOutAt: now})
		assert.Equal(t, errs.ErrAlreadyCheckedOut, err)
	})

	t.Run("Find and close", func(t *testing.T) {
		loan, err := repo.FindOpenByBook(ctx, book1)
		require.NoError(t, err)
		assert.Equal(t, anu, loan.StudentID)
		assert.True(t, loan.IsOpen())
		assert.True(t, now.Equal(loan.CheckedOutAt))

		require.NoError(t, repo.Close(ctx, loan.ID, now.Add(48*time.Hour)))

		_, err = repo.FindOpenByBook(ctx, book1)
		assert.Equal(t, errs.ErrNoOpenLoan, err)

		assert.Equal(t, errs.ErrNoOpenLoan, repo.Close(ctx, loan.ID, now.Add(72*time.Hour)))
	})

	t.Run("Closed loans do not block a new checkout", func(t *testing.T) {
		loan := &entity.Loan{StudentID: kavin, BookID: book1, CheckedOutAt: now.Add(49 * time.Hour)}
		require.NoError(t, repo.Create(ctx, loan))

		open, err := repo.FindOpenByBook(ctx, book1)
		require.NoError(t, err)
		assert.Equal(t, loan.ID, open.ID)
	})
}
