package service

import (
	"context"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type DashboardService struct {
	db db.Database
}

func NewDashboardService(database db.Database) *DashboardService {
	return &DashboardService{db: database}
}

func (s DashboardService) Stats(ctx context.Context, owner bson.ObjectID) (models.ChannelStats, error) {
	stats, err := s.db.ChannelStats(ctx, owner)
	if err != nil {
		slog.Error("failed to load channel stats", "error", err, "owner_id", owner.Hex())
		return models.ChannelStats{}, models.ErrInternal("something went wrong, please try again later")
	}
	return stats, nil
}

func (s DashboardService) Videos(ctx context.Context, owner bson.ObjectID) ([]models.Video, error) {
	videos, err := s.db.ChannelVideos(ctx, owner)
	if err != nil {
		slog.Error("failed to load channel videos", "error", err, "owner_id", owner.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return videos, nil
}
