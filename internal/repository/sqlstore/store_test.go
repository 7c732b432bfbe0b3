package sqlstore_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/wordgame/internal/db"
	"github.com/vytor/wordgame/internal/models"
	"github.com/vytor/wordgame/internal/repository"
	"github.com/vytor/wordgame/internal/repository/sqlstore"
	"github.com/vytor/wordgame/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	db    *db.DB
	store *sqlstore.Store
}

func (s *StoreSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.store = sqlstore.NewStore(s.db)
}

func (s *StoreSuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StoreSuite) statisticsRows() int {
	var n int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM game_statistics`).Scan(&n))
	return n
}

func (s *StoreSuite) deleteStatistics() {
	_, err := s.db.Exec(`DELETE FROM game_statistics`)
	s.Require().NoError(err)
}

func (s *StoreSuite) TestMigrationsSeedStatisticsRow() {
	s.Assert().Equal(1, s.statisticsRows())

	stats, err := s.store.Statistics().GetOrCreate(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(0, stats.TotalScore)
	s.Assert().Equal(0, stats.WordsCompleted)
	s.Assert().False(stats.LastUpdated.IsZero())
}

func (s *StoreSuite) TestAppend_AssignsIncreasingIDs() {
	ctx := context.Background()
	repo := s.store.Progress()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first, err := repo.Append(ctx, models.ProgressEntry{Word: "cat", Difficulty: "easy", Score: 5, CompletedAt: at})
	s.Require().NoError(err)
	second, err := repo.Append(ctx, models.ProgressEntry{Word: "dog", Difficulty: "medium", Score: 0, CompletedAt: at.Add(time.Minute)})
	s.Require().NoError(err)

	s.Assert().Greater(first, int64(0))
	s.Assert().Greater(second, first)

	count, err := repo.Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(2, count)
}

func (s *StoreSuite) TestRecent_NewestFirst() {
	ctx := context.Background()
	repo := s.store.Progress()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, w := range []string{"cat", "dog", "pencil"} {
		_, err := repo.Append(ctx, models.ProgressEntry{Word: w, Difficulty: "easy", Score: i, CompletedAt: at})
		s.Require().NoError(err)
	}

	entries, err := repo.Recent(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Assert().Equal("pencil", entries[0].Word)
	s.Assert().Equal("dog", entries[1].Word)
	s.Assert().True(at.Equal(entries[0].CompletedAt))
	s.Assert().Equal(time.UTC, entries[0].CompletedAt.Location())
}

func (s *StoreSuite) TestGetOrCreate_CreatesZeroedSingleton() {
	ctx := context.Background()
	repo := s.store.Statistics()
	s.deleteStatistics()

	stats, err := repo.GetOrCreate(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, stats.TotalScore)
	s.Assert().Equal(0, stats.WordsCompleted)
	s.Assert().Equal(0, stats.EasyCompleted+stats.MediumCompleted+stats.HardCompleted)
	s.Assert().False(stats.LastUpdated.IsZero())

	_, err = repo.GetOrCreate(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(1, s.statisticsRows())
}

func (s *StoreSuite) TestGetOrCreate_ConcurrentFirstAccess() {
	ctx := context.Background()
	s.deleteStatistics()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Statistics().GetOrCreate(ctx)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}
	s.Assert().Equal(1, s.statisticsRows())
}

func (s *StoreSuite) TestCommit_ReplacesState() {
	ctx := context.Background()
	repo := s.store.Statistics()
	_, err := repo.GetOrCreate(ctx)
	s.Require().NoError(err)

	at := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	want := models.Statistics{TotalScore: 8, WordsCompleted: 2, EasyCompleted: 1, MediumCompleted: 1, LastUpdated: at}
	s.Require().NoError(repo.Commit(ctx, want))

	got, err := repo.GetOrCreate(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(want.TotalScore, got.TotalScore)
	s.Assert().Equal(want.WordsCompleted, got.WordsCompleted)
	s.Assert().Equal(want.EasyCompleted, got.EasyCompleted)
	s.Assert().Equal(want.MediumCompleted, got.MediumCompleted)
	s.Assert().Equal(0, got.HardCompleted)
	s.Assert().True(at.Equal(got.LastUpdated))
}

func (s *StoreSuite) TestCommit_MissingRow() {
	s.deleteStatistics()
	err := s.store.Statistics().Commit(context.Background(), models.Statistics{LastUpdated: time.Now()})
	s.Assert().ErrorIs(err, sqlstore.ErrStatisticsMissing)
}

func (s *StoreSuite) TestWithinTx_RollsBackBothWrites() {
	ctx := context.Background()
	boom := stderrors.New("boom")

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Progress.Append(ctx, models.ProgressEntry{Word: "cat", Difficulty: "easy", Score: 3, CompletedAt: time.Now()}); err != nil {
			return err
		}
		stats, err := repos.Statistics.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		stats.TotalScore = 3
		if err := repos.Statistics.Commit(ctx, *stats); err != nil {
			return err
		}
		return boom
	})
	s.Require().ErrorIs(err, boom)

	count, err := s.store.Progress().Count(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, count)

	stats, err := s.store.Statistics().GetOrCreate(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(0, stats.TotalScore)
}

func (s *StoreSuite) TestWithinTx_Commits() {
	ctx := context.Background()

	err := s.store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Progress.Append(ctx, models.ProgressEntry{Word: "cat", Difficulty: "easy", Score: 3, CompletedAt: time.Now()}); err != nil {
			return err
		}
		stats, err := repos.Statistics.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		if err := stats.Apply(models.Attempt{Word: "cat", Difficulty: "easy", Score: 3}, time.Now().UTC()); err != nil {
			return err
		}
		return repos.Statistics.Commit(ctx, *stats)
	})
	s.Require().NoError(err)

	stats, err := s.store.Statistics().GetOrCreate(ctx)
	s.Require().NoError(err)
	s.Assert().Equal(3, stats.TotalScore)
	s.Assert().Equal(1, stats.EasyCompleted)
}

func (s *StoreSuite) TestPing() {
	s.Assert().NoError(s.store.Ping(context.Background()))
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
