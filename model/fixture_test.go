package model_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/reoring/streamconv/model"
)

func fixture() *model.Request {
	return &model.Request{
		Type: model.RequestSuccess,
		Stream: model.Stream{
			UserID:    uuid.MustParse("8d3b2c1e-4f5a-4b6c-9d7e-1f2a3b4c5d6e"),
			IsPrivate: false,
			Settings:  45345,
			ShardURL:  model.MustParseURL("https://n3.example.com/sv3"),
			PublicTariff: model.PublicTariff{
				ID: 1, Price: 100, Duration: model.Duration(time.Hour), Description: "test public tariff",
			},
			PrivateTariff: model.PrivateTariff{
				ClientPrice: 250, Duration: model.Duration(time.Minute), Description: "test private tariff",
			},
		},
		Gifts: []model.Gift{
			{ID: 1, Price: 2, Description: "Gift 1"},
			{ID: 2, Price: 3, Description: "Gift 2"},
		},
		Debug: model.Debug{
			Duration: model.Duration(234 * time.Millisecond),
			At:       model.NewTimestamp(time.Date(2023, 6, 12, 12, 0, 0, 0, time.UTC)),
		},
	}
}
