package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"star_commerce/config"
	"star_commerce/internal/database"
	"star_commerce/internal/global"
)

// InitRegistry khởi tạo registry collection và các index
func InitRegistry() {
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName_Data)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName_Data, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName_Data, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.PricingConfigs,
		global.MongoDB_ColNames.CapitalRates,
		global.MongoDB_ColNames.Projects,
		global.MongoDB_ColNames.Collaborations,
		global.MongoDB_ColNames.Works,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	// Khởi tạo các index cho các collection
	if err := database.CreateCommerceIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create indexes: %v", err)
		return err
	}
	logrus.Info("Created collection indexes")

	return nil
}
