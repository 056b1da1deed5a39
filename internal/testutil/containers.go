// containers.go
//
// A multi-store articles, comments and users REST service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of articles-api.
// articles-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// articles-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with articles-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/localnerve/articles-api/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Default images for each backing store
const (
	MongoImage    = "mongo:7"
	PostgresImage = "postgres:16-alpine"
	MariaDBImage  = "mariadb:11"
)

const (
	containerUser     = "articles"
	containerPassword = "articles-pass"
	containerDatabase = "articles"
)

// StoreContainer is a running database container and the configuration that reaches it
type StoreContainer struct {
	testcontainers.Container
	Config *config.Config
}

// Terminate stops and removes the container
func (sc *StoreContainer) Terminate(ctx context.Context) error {
	if sc == nil || sc.Container == nil {
		return nil
	}
	return sc.Container.Terminate(ctx)
}

// Env lists the settings, as KEY=value lines, that point the service at the container
func (sc *StoreContainer) Env() []string {
	cfg := sc.Config
	if cfg.StoreType == config.StoreMongo {
		return []string{
			"STORE_TYPE=" + cfg.StoreType,
			"MONGO_URI=" + cfg.MongoURI,
			"MONGO_DATABASE=" + cfg.MongoDatabase,
		}
	}
	return []string{
		"STORE_TYPE=" + cfg.StoreType,
		"DB_TYPE=" + cfg.DBType,
		"DB_HOST=" + cfg.DBHost,
		"DB_PORT=" + cfg.DBPort,
		"DB_DATABASE=" + cfg.DBDatabase,
		"DB_USER=" + cfg.DBUser,
		"DB_PASSWORD=" + cfg.DBPassword,
	}
}

// StartMongo starts a MongoDB container with seeding enabled
func StartMongo(ctx context.Context) (*StoreContainer, error) {
	port := nat.Port("27017/tcp")
	c, host, mapped, err := start(ctx, testcontainers.ContainerRequest{
		Image:        MongoImage,
		ExposedPorts: []string{string(port)},
		WaitingFor:   wait.ForListeningPort(port).WithStartupTimeout(60 * time.Second),
	}, port)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB: %w", err)
	}

	return &StoreContainer{Container: c, Config: &config.Config{
		StoreType:     config.StoreMongo,
		MongoURI:      fmt.Sprintf("mongodb://%s:%s", host, mapped.Port()),
		MongoDatabase: "ArticlesDb",
		MongoSeed:     true,
	}}, nil
}

// StartSQL starts a relational database container for dbType: postgres, mysql or mariadb
func StartSQL(ctx context.Context, dbType string) (*StoreContainer, error) {
	var (
		req  testcontainers.ContainerRequest
		port nat.Port
	)

	switch dbType {
	case "postgres":
		port = "5432/tcp"
		req = testcontainers.ContainerRequest{
			Image:        PostgresImage,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"POSTGRES_PASSWORD": containerPassword,
				"POSTGRES_USER":     containerUser,
				"POSTGRES_DB":       containerDatabase,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		}
	case "mysql", "mariadb":
		port = "3306/tcp"
		req = testcontainers.ContainerRequest{
			Image:        MariaDBImage,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": containerPassword,
				"MARIADB_DATABASE":      containerDatabase,
				"MARIADB_USER":          containerUser,
				"MARIADB_PASSWORD":      containerPassword,
			},
			WaitingFor: wait.ForListeningPort(port).WithStartupTimeout(90 * time.Second),
		}
	default:
		return nil, fmt.Errorf("unsupported container database type: %s", dbType)
	}

	c, host, mapped, err := start(ctx, req, port)
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", dbType, err)
	}

	return &StoreContainer{Container: c, Config: &config.Config{
		StoreType:         config.StoreSQL,
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        containerDatabase,
		DBUser:            containerUser,
		DBPassword:        containerPassword,
		DBConnectionLimit: 5,
		DBLogLevel:        "silent",
	}}, nil
}

func start(ctx context.Context, req testcontainers.ContainerRequest, port nat.Port) (testcontainers.Container, string, nat.Port, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", "", err
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, "", "", err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, "", "", err
	}

	return c, host, mapped, nil
}
