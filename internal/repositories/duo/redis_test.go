package duo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/lverdier/defiparty/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newLink(id string, createdAt time.Time) *models.MentorEleveLink {
	return &models.MentorEleveLink{
		ID:              id,
		MentorProfileID: "profile-mentor-" + id,
		EleveProfileID:  "profile-eleve-" + id,
		CreatedAt:       models.NewTimestamp(createdAt),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndListLinks() {
	// Saved out of creation order on purpose
	s.Require().NoError(s.repo.SaveLink(context.Background(), &SaveLinkInput{
		Link: s.newLink("link-b", s.testNow.Add(time.Minute)),
	}))
	s.Require().NoError(s.repo.SaveLink(context.Background(), &SaveLinkInput{
		Link: s.newLink("link-a", s.testNow),
	}))

	out, err := s.repo.ListLinks(context.Background(), &ListLinksInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Links, 2)
	s.Equal("link-a", out.Links[0].ID)
	s.Equal("link-b", out.Links[1].ID)
	s.Equal("profile-mentor-link-a", out.Links[0].MentorProfileID)
	s.False(out.Links[0].IsConsumed)
}

func (s *RedisRepositoryTestSuite) TestConsumeLink() {
	s.Require().NoError(s.repo.SaveLink(context.Background(), &SaveLinkInput{
		Link: s.newLink("link-a", s.testNow),
	}))

	s.Require().NoError(s.repo.ConsumeLink(context.Background(), &ConsumeLinkInput{
		LinkID: "link-a",
	}))

	out, err := s.repo.ListLinks(context.Background(), &ListLinksInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Links, 1)
	s.True(out.Links[0].IsConsumed)
}

func (s *RedisRepositoryTestSuite) TestConsumeMissingLink() {
	err := s.repo.ConsumeLink(context.Background(), &ConsumeLinkInput{
		LinkID: "missing",
	})
	s.Require().ErrorIs(err, ErrLinkNotFound)
}

func (s *RedisRepositoryTestSuite) TestListLinksEmpty() {
	out, err := s.repo.ListLinks(context.Background(), &ListLinksInput{})
	s.Require().NoError(err)
	s.Empty(out.Links)
}
