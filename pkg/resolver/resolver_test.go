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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/raspi-recipe/pkg/buildinfo"
	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

var fixedInfo = buildinfo.Static{Rev: "deadbee (Test, 2025-01-01)", Time: "2025-01-01 12:00"}

func mustResolve(t *testing.T, version, suite string, opts ...Option) *Variables {
	t.Helper()
	tgt, err := target.New(version, suite)
	require.NoError(t, err)
	v, err := Resolve(context.Background(), tgt, append([]Option{WithBuildInfo(fixedInfo)}, opts...)...)
	require.NoError(t, err)
	return v
}

func TestResolve_Hardware(t *testing.T) {
	tests := []struct {
		version   string
		arch      string
		linux     string
		dtb       string
		serial    string
		wireless  string
		bluetooth string
	}{
		{"1", "armel", "linux-image-rpi", "/usr/lib/linux-image-*-rpi/bcm*rpi-*.dtb", "ttyAMA0,115200", "firmware-brcm80211", "bluez-firmware"},
		{"2", "armhf", "linux-image-armmp", "/usr/lib/linux-image-*-armmp/bcm*rpi*.dtb", "ttyAMA0,115200", "", ""},
		{"3", "arm64", "linux-image-arm64", "/usr/lib/linux-image-*-arm64/broadcom/bcm*rpi*.dtb", "ttyS1,115200", "firmware-brcm80211", "bluez-firmware"},
		{"4", "arm64", "linux-image-arm64", "/usr/lib/linux-image-*-arm64/broadcom/bcm*rpi*.dtb", "ttyS1,115200", "firmware-brcm80211", "bluez-firmware"},
	}

	for _, tt := range tests {
		t.Run("version "+tt.version, func(t *testing.T) {
			v := mustResolve(t, tt.version, "bookworm")
			assert.Equal(t, tt.arch, v.Arch)
			assert.Equal(t, tt.linux, v.LinuxImage)
			assert.Equal(t, tt.dtb, v.DTB)
			assert.Equal(t, tt.serial, v.SerialConsole)
			assert.Equal(t, tt.wireless, v.WirelessFirmware)
			assert.Equal(t, tt.bluetooth, v.BluetoothFirmware)
			assert.Equal(t, "rpi_"+tt.version, v.Hostname)
		})
	}
}

func TestResolve_Release(t *testing.T) {
	tests := []struct {
		suite     string
		component string
		old       string
	}{
		// bullseye reports no legacy alias even though it uses the old name.
		{"bullseye", "non-free", ""},
		{"bookworm", "non-free-firmware", "non-free"},
		{"trixie", "non-free-firmware", "non-free"},
	}

	for _, tt := range tests {
		t.Run(tt.suite, func(t *testing.T) {
			v := mustResolve(t, "3", tt.suite)
			assert.Equal(t, tt.suite, v.Release)
			assert.Equal(t, tt.component, v.FirmwareComponent)
			assert.Equal(t, tt.old, v.FirmwareComponentOld)
		})
	}
}

func TestResolve_ChrootCommands(t *testing.T) {
	for _, tgt := range target.All() {
		t.Run(tgt.String(), func(t *testing.T) {
			v := mustResolve(t, tgt.Version().String(), tgt.Suite().String())
			if tgt.Version() == target.Version4 {
				assert.Equal(t, []string{"sed -i 's/cma=64M //' /boot/firmware/cmdline.txt"}, v.ExtraChrootShellCmds)
				return
			}
			assert.Empty(t, v.ExtraChrootShellCmds)
		})
	}
}

func TestResolve_ChrootCommandsNotShared(t *testing.T) {
	v := mustResolve(t, "4", "trixie")
	v.ExtraChrootShellCmds[0] = "changed"

	again := mustResolve(t, "4", "trixie")
	assert.Equal(t, cmaFixup, again.ExtraChrootShellCmds[0])
}

func TestResolve_Constants(t *testing.T) {
	v := mustResolve(t, "1", "trixie")

	assert.Equal(t, "systemd-timesyncd", v.SystemdTimesyncd)
	assert.Equal(t, `echo "uninitialized" > /etc/machine-id`, v.TouchMachineID)
	assert.Empty(t, v.ExtraRootShellCmds)
	assert.Empty(t, v.FixFirmwareCmds)
	assert.Equal(t, fixedInfo.Rev, v.GitCommit)
	assert.Equal(t, fixedInfo.Time, v.BuildTime)
}

func TestResolve_FixFirmware(t *testing.T) {
	v := mustResolve(t, "3", "bookworm", WithFixFirmware(true))

	require.Len(t, v.FixFirmwareCmds, 1)
	assert.Equal(t,
		"sed -i s/raspi-firmware/raspi3-firmware/ ${ROOT?}/etc/systemd/system/rpi-reconfigure-raspi-firmware.service",
		v.FixFirmwareCmds[0])
}

func TestResolve_Backports(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		v := mustResolve(t, "2", "bullseye")
		assert.Equal(t, []string{
			"",
			"# Backports are _not_ enabled by default.",
			"# Enable them by uncommenting the following line:",
			"# deb http://deb.debian.org/debian bullseye-backports main non-free",
		}, v.Backports)
	})

	t.Run("enabled with reason", func(t *testing.T) {
		v := mustResolve(t, "4", "bookworm", WithBackports("# newer kernel for the Pi 4"))
		assert.Equal(t, []string{
			"",
			"# newer kernel for the Pi 4",
			"deb http://deb.debian.org/debian/ bookworm-backports main non-free-firmware",
		}, v.Backports)
	})
}

func TestResolve_AllTargets(t *testing.T) {
	for _, tgt := range target.All() {
		t.Run(tgt.String(), func(t *testing.T) {
			v, err := Resolve(context.Background(), tgt, WithBuildInfo(fixedInfo))
			require.NoError(t, err)
			assert.NoError(t, v.Validate())
			assert.NotEmpty(t, v.Arch)
			assert.NotEmpty(t, v.LinuxImage)
			assert.NotEmpty(t, v.SerialConsole)
		})
	}
}

func TestResolve_ZeroTarget(t *testing.T) {
	_, err := Resolve(context.Background(), target.BuildTarget{}, WithBuildInfo(fixedInfo))
	assert.Error(t, err)
}

func TestVariables_Validate(t *testing.T) {
	v := mustResolve(t, "3", "trixie")
	v.DTB = "/usr/lib/[bcm*.dtb"

	err := v.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid device tree glob")
}

func TestVariables_Markers(t *testing.T) {
	v := mustResolve(t, "1", "bookworm")

	seen := make(map[string]bool)
	for _, s := range v.Scalars() {
		assert.True(t, strings.HasPrefix(s.Marker, "__") && strings.HasSuffix(s.Marker, "__"), s.Marker)
		assert.False(t, seen[s.Marker], "duplicate marker %s", s.Marker)
		seen[s.Marker] = true
	}
	for _, b := range v.Blocks() {
		assert.False(t, seen[b.Marker], "duplicate marker %s", b.Marker)
		seen[b.Marker] = true
	}
	assert.Len(t, seen, 18)
}
