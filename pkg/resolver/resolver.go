// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resolver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/raspi-recipe/pkg/buildinfo"
	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

// Option configures Resolve.
type Option func(*options)

type options struct {
	backports   string
	fixFirmware bool
	info        buildinfo.Provider
}

// WithBackports enables the backports source. reason is written to the
// recipe above the source line and must be a YAML-safe comment or key. An
// empty reason leaves backports disabled.
func WithBackports(reason string) Option {
	return func(o *options) {
		o.backports = reason
	}
}

// WithFixFirmware renames raspi-firmware to raspi3-firmware in the
// reconfigure unit installed into the image.
func WithFixFirmware(enabled bool) Option {
	return func(o *options) {
		o.fixFirmware = enabled
	}
}

// WithBuildInfo sets the build stamp source. Defaults to git and the wall clock.
func WithBuildInfo(p buildinfo.Provider) Option {
	return func(o *options) {
		o.info = p
	}
}

// Resolve derives the template variables for t. t must come from target.New
// or target.All.
func Resolve(ctx context.Context, t target.BuildTarget, opts ...Option) (*Variables, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.info == nil {
		o.info = buildinfo.NewProvider()
	}

	hw, ok := hardwareRules[t.Version()]
	if !ok {
		return nil, fmt.Errorf("no hardware rule for version %q", t.Version())
	}
	rel, ok := releaseRules[t.Suite()]
	if !ok {
		return nil, fmt.Errorf("no release rule for suite %q", t.Suite())
	}

	v := &Variables{
		Release:              t.Suite().String(),
		Arch:                 hw.arch,
		FirmwareComponent:    rel.firmwareComponent,
		FirmwareComponentOld: rel.firmwareComponentOld,
		LinuxImage:           hw.linuxImage,
		DTB:                  hw.dtb,
		SystemdTimesyncd:     systemdTimesyncd,
		WirelessFirmware:     hw.wirelessFirmware,
		BluetoothFirmware:    hw.bluetoothFirmware,
		SerialConsole:        hw.serial,
		Hostname:             hostnamePrefix + t.Version().String(),
		TouchMachineID:       touchMachineID,
		GitCommit:            o.info.Revision(ctx),
		BuildTime:            o.info.Timestamp(),
		FixFirmwareCmds:      fixFirmwareCmds(o.fixFirmware),
		ExtraRootShellCmds:   []string{},
		ExtraChrootShellCmds: append([]string{}, hw.extraChrootCmds...),
		Backports:            backportsStanza(t.Suite(), rel.firmwareComponent, o.backports),
	}

	slog.Debug("resolved variables",
		"target", t.String(),
		"arch", v.Arch,
		"firmwareComponent", v.FirmwareComponent,
		"backports", o.backports != "",
		"fixFirmware", o.fixFirmware)

	return v, nil
}

func fixFirmwareCmds(enabled bool) []string {
	if !enabled {
		return []string{}
	}
	return []string{fixFirmwareCmd}
}

// backportsStanza returns the sources lines for backports. The leading empty
// line separates the stanza from the main source and is dropped by cleanup.
func backportsStanza(suite target.Suite, component, reason string) []string {
	backportsSuite := suite.String() + "-backports"
	if reason != "" {
		return []string{
			"",
			reason,
			fmt.Sprintf("deb %s/ %s main %s", backportsMirror, backportsSuite, component),
		}
	}
	return []string{
		"",
		"# Backports are _not_ enabled by default.",
		"# Enable them by uncommenting the following line:",
		fmt.Sprintf("# deb %s %s main %s", backportsMirror, backportsSuite, component),
	}
}
