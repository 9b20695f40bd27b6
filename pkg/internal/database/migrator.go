package database

import (
	"github.com/wayfarerhq/wayfarer/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.FollowEdge{},
	&models.Trip{},
	&models.Step{},
	&models.Comment{},
	&models.Like{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.TripView{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
