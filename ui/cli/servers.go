// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/connprompt/core/model"
	"github.com/toeirei/connprompt/internal/db"
	"github.com/toeirei/connprompt/internal/i18n"
	"github.com/toeirei/connprompt/util/slicest"
	"gopkg.in/yaml.v3"
)

const defaultPort = 5432

// runServerForm asks for a server definition interactively. Replaced in tests.
var runServerForm = askServer

func newServersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "servers",
		Aliases: []string{"server"},
		Short:   "Manage the registered database servers",
	}

	listCmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List registered servers, optionally filtered by a search query",
		RunE:  runServersList,
	}
	listCmd.Flags().StringP("output", "o", "table", `output format ("table", "yaml", "json")`)

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Register a database server",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServersAdd,
	}
	addCmd.Flags().BoolP("interactive", "i", false, "ask for the server definition in a form")
	addCmd.Flags().String("host", "", "database host")
	addCmd.Flags().Int("port", defaultPort, "database port")
	addCmd.Flags().String("user", "", "database user")
	addCmd.Flags().String("passfile", "", "pgpass style password file; no password is asked when set")
	addCmd.Flags().Bool("tunnel", false, "connect through an SSH tunnel")
	addCmd.Flags().String("tunnel-host", "", "SSH tunnel host")
	addCmd.Flags().Int("tunnel-port", 22, "SSH tunnel port")
	addCmd.Flags().String("tunnel-user", "", "SSH tunnel user")
	addCmd.Flags().String("tunnel-auth", model.TunnelAuthPassword, `SSH tunnel authentication ("password", "identity")`)
	addCmd.Flags().String("identity-file", "", "SSH identity file for identity authentication")

	removeCmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a registered server",
		Args:    cobra.ExactArgs(1),
		RunE:    runServersRemove,
	}

	cmd.AddCommand(listCmd, addCmd, removeCmd)
	return cmd
}

// withRegistry loads the configuration, opens the registry and runs fn.
func withRegistry(cmd *cobra.Command, fn func(store db.Store) error) error {
	cfg, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := openRegistry(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func runServersList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	return withRegistry(cmd, func(store db.Store) error {
		servers, err := store.ListServers(cmd.Context())
		if err != nil {
			return err
		}
		servers = db.FilterServersByTokens(servers, db.TokenizeSearchQuery(strings.Join(args, " ")))
		return writeServers(cmd.OutOrStdout(), servers, output)
	})
}

func writeServers(w io.Writer, servers []model.Server, output string) error {
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(servers); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(servers)
	case "table", "":
		if len(servers) == 0 {
			_, err := fmt.Fprintln(w, i18n.T("servers.none"))
			return err
		}
		_, err := fmt.Fprintln(w, serverTable(servers))
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

func serverTable(servers []model.Server) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("ID", "NAME", "ADDRESS", "USER", "TUNNEL").
		Rows(slicest.Map(servers, func(s model.Server) []string {
			tunnel := "-"
			if s.UseTunnel {
				tunnel = fmt.Sprintf("%s@%s:%d (%s)", s.TunnelUsername, s.TunnelHost, s.TunnelPort, s.TunnelAuth)
			}
			return []string{
				strconv.Itoa(s.ID),
				s.Name,
				fmt.Sprintf("%s:%d", s.Host, s.Port),
				s.Username,
				tunnel,
			}
		})...).
		String()
}

func runServersAdd(cmd *cobra.Command, args []string) error {
	srv, err := serverFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		if err := runServerForm(&srv); err != nil {
			return err
		}
	}
	if err := validateServer(srv); err != nil {
		return err
	}

	return withRegistry(cmd, func(store db.Store) error {
		if err := store.AddServer(cmd.Context(), &srv); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("servers.added", srv.Name))
		return err
	})
}

func runServersRemove(cmd *cobra.Command, args []string) error {
	return withRegistry(cmd, func(store db.Store) error {
		if err := store.DeleteServer(cmd.Context(), args[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("servers.removed", args[0]))
		return err
	})
}

func serverFromFlags(cmd *cobra.Command, args []string) (model.Server, error) {
	var s model.Server
	if len(args) == 1 {
		s.Name = args[0]
	}
	f := cmd.Flags()
	var err error
	get := func(name string, dst *string) {
		if err == nil {
			*dst, err = f.GetString(name)
		}
	}
	getInt := func(name string, dst *int) {
		if err == nil {
			*dst, err = f.GetInt(name)
		}
	}
	get("host", &s.Host)
	getInt("port", &s.Port)
	get("user", &s.Username)
	get("passfile", &s.PassFile)
	get("tunnel-host", &s.TunnelHost)
	getInt("tunnel-port", &s.TunnelPort)
	get("tunnel-user", &s.TunnelUsername)
	get("tunnel-auth", &s.TunnelAuth)
	get("identity-file", &s.TunnelIdentityFile)
	if err == nil {
		s.UseTunnel, err = f.GetBool("tunnel")
	}
	if !s.UseTunnel {
		s.TunnelHost, s.TunnelPort, s.TunnelUsername, s.TunnelAuth, s.TunnelIdentityFile = "", 0, "", "", ""
	}
	return s, err
}

func validateServer(s model.Server) error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, fmt.Errorf("name: %s", i18n.T("servers.form.required")))
	}
	if s.Host == "" {
		errs = append(errs, fmt.Errorf("host: %s", i18n.T("servers.form.required")))
	}
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port: %s", i18n.T("servers.form.invalid_port")))
	}
	if s.UseTunnel {
		if s.TunnelHost == "" {
			errs = append(errs, fmt.Errorf("tunnel host: %s", i18n.T("servers.form.required")))
		}
		if s.TunnelPort < 1 || s.TunnelPort > 65535 {
			errs = append(errs, fmt.Errorf("tunnel port: %s", i18n.T("servers.form.invalid_port")))
		}
		switch s.TunnelAuth {
		case model.TunnelAuthPassword:
		case model.TunnelAuthIdentity:
			if s.TunnelIdentityFile == "" {
				errs = append(errs, fmt.Errorf("identity file: %s", i18n.T("servers.form.required")))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown tunnel authentication %q", s.TunnelAuth))
		}
	}
	return errors.Join(errs...)
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(i18n.T("servers.form.required"))
	}
	return nil
}

func validPort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return errors.New(i18n.T("servers.form.invalid_port"))
	}
	return nil
}

// askServer fills s from a huh form. Values already in s are the defaults.
func askServer(s *model.Server) error {
	port := strconv.Itoa(s.Port)
	tunnelPort := strconv.Itoa(max(s.TunnelPort, 22))
	if s.TunnelAuth == "" {
		s.TunnelAuth = model.TunnelAuthPassword
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(i18n.T("servers.form.name")).Value(&s.Name).Validate(required),
			huh.NewInput().Title(i18n.T("servers.form.host")).Value(&s.Host).Validate(required),
			huh.NewInput().Title(i18n.T("servers.form.port")).Value(&port).Validate(validPort),
			huh.NewInput().Title(i18n.T("servers.form.username")).Value(&s.Username),
			huh.NewInput().Title(i18n.T("servers.form.passfile")).Value(&s.PassFile),
			huh.NewConfirm().Title(i18n.T("servers.form.use_tunnel")).Value(&s.UseTunnel),
		),
		huh.NewGroup(
			huh.NewInput().Title(i18n.T("servers.form.tunnel_host")).Value(&s.TunnelHost).Validate(required),
			huh.NewInput().Title(i18n.T("servers.form.tunnel_port")).Value(&tunnelPort).Validate(validPort),
			huh.NewInput().Title(i18n.T("servers.form.tunnel_username")).Value(&s.TunnelUsername),
			huh.NewSelect[string]().
				Title(i18n.T("servers.form.tunnel_auth")).
				Options(
					huh.NewOption(model.TunnelAuthPassword, model.TunnelAuthPassword),
					huh.NewOption(model.TunnelAuthIdentity, model.TunnelAuthIdentity),
				).
				Value(&s.TunnelAuth),
		).WithHideFunc(func() bool { return !s.UseTunnel }),
		huh.NewGroup(
			huh.NewInput().Title(i18n.T("servers.form.tunnel_identity_file")).Value(&s.TunnelIdentityFile).Validate(required),
		).WithHideFunc(func() bool { return !s.UseTunnel || s.TunnelAuth != model.TunnelAuthIdentity }),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}

	s.Port, _ = strconv.Atoi(strings.TrimSpace(port))
	if s.UseTunnel {
		s.TunnelPort, _ = strconv.Atoi(strings.TrimSpace(tunnelPort))
	} else {
		s.TunnelHost, s.TunnelPort, s.TunnelUsername, s.TunnelAuth, s.TunnelIdentityFile = "", 0, "", "", ""
	}
	return nil
}
