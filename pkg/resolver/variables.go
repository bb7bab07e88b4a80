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
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/NVIDIA/raspi-recipe/pkg/errors"
	"github.com/NVIDIA/raspi-recipe/pkg/render"
)

// Template markers.
const (
	MarkerRelease              = "__RELEASE__"
	MarkerArch                 = "__ARCH__"
	MarkerFirmwareComponent    = "__FIRMWARE_COMPONENT__"
	MarkerFirmwareComponentOld = "__FIRMWARE_COMPONENT_OLD__"
	MarkerLinuxImage           = "__LINUX_IMAGE__"
	MarkerDTB                  = "__DTB__"
	MarkerSystemdTimesyncd     = "__SYSTEMD_TIMESYNCD__"
	MarkerWirelessFirmware     = "__WIRELESS_FIRMWARE__"
	MarkerBluetoothFirmware    = "__BLUETOOTH_FIRMWARE__"
	MarkerSerialConsole        = "__SERIAL_CONSOLE__"
	MarkerHost                 = "__HOST__"
	MarkerTouchMachineID       = "__TOUCH_MACHINE_ID__"
	MarkerGitCommit            = "__GITCOMMIT__"
	MarkerBuildTime            = "__BUILDTIME__"

	MarkerFixFirmwarePkgName   = "__FIX_FIRMWARE_PKG_NAME__"
	MarkerExtraRootShellCmds   = "__EXTRA_ROOT_SHELL_CMDS__"
	MarkerExtraChrootShellCmds = "__EXTRA_CHROOT_SHELL_CMDS__"
	MarkerBackports            = "__BACKPORTS__"
)

// Variables is the resolved value set for one build target. It is built once
// by Resolve and not modified afterwards.
type Variables struct {
	Release              string `json:"release" yaml:"release"`
	Arch                 string `json:"arch" yaml:"arch"`
	FirmwareComponent    string `json:"firmwareComponent" yaml:"firmwareComponent"`
	FirmwareComponentOld string `json:"firmwareComponentOld" yaml:"firmwareComponentOld"`
	LinuxImage           string `json:"linuxImage" yaml:"linuxImage"`
	DTB                  string `json:"dtb" yaml:"dtb"`
	SystemdTimesyncd     string `json:"systemdTimesyncd" yaml:"systemdTimesyncd"`
	// WirelessFirmware and BluetoothFirmware are empty when the hardware has
	// no radio.
	WirelessFirmware  string `json:"wirelessFirmware" yaml:"wirelessFirmware"`
	BluetoothFirmware string `json:"bluetoothFirmware" yaml:"bluetoothFirmware"`
	SerialConsole     string `json:"serialConsole" yaml:"serialConsole"`
	Hostname          string `json:"hostname" yaml:"hostname"`
	TouchMachineID    string `json:"touchMachineID" yaml:"touchMachineID"`
	GitCommit         string `json:"gitCommit" yaml:"gitCommit"`
	BuildTime         string `json:"buildTime" yaml:"buildTime"`

	FixFirmwareCmds      []string `json:"fixFirmwareCmds" yaml:"fixFirmwareCmds"`
	ExtraRootShellCmds   []string `json:"extraRootShellCmds" yaml:"extraRootShellCmds"`
	ExtraChrootShellCmds []string `json:"extraChrootShellCmds" yaml:"extraChrootShellCmds"`
	Backports            []string `json:"backports" yaml:"backports"`
}

// Scalars implements render.Substitutions.
func (v *Variables) Scalars() []render.Scalar {
	return []render.Scalar{
		{Marker: MarkerRelease, Value: v.Release},
		{Marker: MarkerArch, Value: v.Arch},
		{Marker: MarkerFirmwareComponent, Value: v.FirmwareComponent},
		{Marker: MarkerFirmwareComponentOld, Value: v.FirmwareComponentOld},
		{Marker: MarkerLinuxImage, Value: v.LinuxImage},
		{Marker: MarkerDTB, Value: v.DTB},
		{Marker: MarkerSystemdTimesyncd, Value: v.SystemdTimesyncd},
		{Marker: MarkerWirelessFirmware, Value: v.WirelessFirmware},
		{Marker: MarkerBluetoothFirmware, Value: v.BluetoothFirmware},
		{Marker: MarkerSerialConsole, Value: v.SerialConsole},
		{Marker: MarkerHost, Value: v.Hostname},
		{Marker: MarkerTouchMachineID, Value: v.TouchMachineID},
		{Marker: MarkerGitCommit, Value: v.GitCommit},
		{Marker: MarkerBuildTime, Value: v.BuildTime},
	}
}

// Blocks implements render.Substitutions.
func (v *Variables) Blocks() []render.Block {
	return []render.Block{
		{Marker: MarkerFixFirmwarePkgName, Lines: v.FixFirmwareCmds},
		{Marker: MarkerExtraRootShellCmds, Lines: v.ExtraRootShellCmds},
		{Marker: MarkerExtraChrootShellCmds, Lines: v.ExtraChrootShellCmds},
		{Marker: MarkerBackports, Lines: v.Backports},
	}
}

// Validate checks the values that end up as patterns in the recipe.
func (v *Variables) Validate() error {
	if !doublestar.ValidatePattern(v.DTB) {
		return errors.NewWithContext(errors.ErrCodeInternal,
			fmt.Sprintf("invalid device tree glob %q", v.DTB),
			map[string]any{"arch": v.Arch})
	}
	return nil
}
