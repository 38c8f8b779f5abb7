// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package db

import (
	"context"
	"fmt"
	"strconv"

	"github.com/toeirei/connprompt/core/model"
	"github.com/uptrace/bun"
)

// Store is the server registry.
type Store interface {
	ListServers(ctx context.Context) ([]model.Server, error)
	// GetServer looks a server up by name, or by id when nameOrID is numeric.
	GetServer(ctx context.Context, nameOrID string) (*model.Server, error)
	AddServer(ctx context.Context, s *model.Server) error
	DeleteServer(ctx context.Context, name string) error
	Close() error
}

type serverModel struct {
	bun.BaseModel `bun:"table:servers,alias:s"`

	ID                 int    `bun:"id,pk,autoincrement"`
	Name               string `bun:"name,notnull,unique"`
	Host               string `bun:"host,notnull"`
	Port               int    `bun:"port,notnull"`
	Username           string `bun:"username,notnull"`
	PassFile           string `bun:"pass_file,notnull"`
	UseTunnel          bool   `bun:"use_tunnel,notnull"`
	TunnelHost         string `bun:"tunnel_host,notnull"`
	TunnelPort         int    `bun:"tunnel_port,notnull"`
	TunnelUsername     string `bun:"tunnel_username,notnull"`
	TunnelAuth         string `bun:"tunnel_auth,notnull"`
	TunnelIdentityFile string `bun:"tunnel_identity_file,notnull"`
}

func serverToModel(s model.Server) serverModel {
	return serverModel{
		ID:                 s.ID,
		Name:               s.Name,
		Host:               s.Host,
		Port:               s.Port,
		Username:           s.Username,
		PassFile:           s.PassFile,
		UseTunnel:          s.UseTunnel,
		TunnelHost:         s.TunnelHost,
		TunnelPort:         s.TunnelPort,
		TunnelUsername:     s.TunnelUsername,
		TunnelAuth:         s.TunnelAuth,
		TunnelIdentityFile: s.TunnelIdentityFile,
	}
}

func (m serverModel) toServer() model.Server {
	return model.Server{
		ID:                 m.ID,
		Name:               m.Name,
		Host:               m.Host,
		Port:               m.Port,
		Username:           m.Username,
		PassFile:           m.PassFile,
		UseTunnel:          m.UseTunnel,
		TunnelHost:         m.TunnelHost,
		TunnelPort:         m.TunnelPort,
		TunnelUsername:     m.TunnelUsername,
		TunnelAuth:         m.TunnelAuth,
		TunnelIdentityFile: m.TunnelIdentityFile,
	}
}

// BunStore implements Store on top of bun.
type BunStore struct {
	bun *bun.DB
}

// *BunStore implements Store
var _ Store = (*BunStore)(nil)

// BunDB exposes the underlying *bun.DB.
func (s *BunStore) BunDB() *bun.DB {
	return s.bun
}

func (s *BunStore) ListServers(ctx context.Context) ([]model.Server, error) {
	var rows []serverModel
	if err := s.bun.NewSelect().Model(&rows).Order("name ASC").Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	out := make([]model.Server, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toServer())
	}
	return out, nil
}

func (s *BunStore) GetServer(ctx context.Context, nameOrID string) (*model.Server, error) {
	var row serverModel
	q := s.bun.NewSelect().Model(&row)
	if id, err := strconv.Atoi(nameOrID); err == nil {
		q = q.Where("id = ? OR name = ?", id, nameOrID)
	} else {
		q = q.Where("name = ?", nameOrID)
	}
	if err := q.Limit(1).Scan(ctx); err != nil {
		return nil, fmt.Errorf("server %q: %w", nameOrID, MapDBError(err))
	}
	srv := row.toServer()
	return &srv, nil
}

func (s *BunStore) AddServer(ctx context.Context, srv *model.Server) error {
	row := serverToModel(*srv)
	row.ID = 0
	if _, err := s.bun.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("server %q: %w", srv.Name, MapDBError(err))
	}
	srv.ID = row.ID
	return nil
}

func (s *BunStore) DeleteServer(ctx context.Context, name string) error {
	res, err := s.bun.NewDelete().Model((*serverModel)(nil)).Where("name = ?", name).Exec(ctx)
	if err != nil {
		return MapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("server %q: %w", name, ErrNotFound)
	}
	return nil
}

func (s *BunStore) Close() error {
	return s.bun.Close()
}
