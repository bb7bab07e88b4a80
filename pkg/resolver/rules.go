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
	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

// hardware holds everything derived from the hardware version alone.
type hardware struct {
	arch              string
	linuxImage        string
	dtb               string
	serial            string
	wirelessFirmware  string
	bluetoothFirmware string
	extraChrootCmds   []string
}

const (
	serialPL011    = "ttyAMA0,115200"
	serialMiniUART = "ttyS1,115200"

	wirelessFirmware  = "firmware-brcm80211"
	bluetoothFirmware = "bluez-firmware"

	// cmaFixup drops the 64M CMA reservation the firmware puts on the Pi 4
	// kernel command line.
	cmaFixup = "sed -i 's/cma=64M //' /boot/firmware/cmdline.txt"
)

var hardwareRules = map[target.Version]hardware{
	target.Version1: {
		arch:              "armel",
		linuxImage:        "linux-image-rpi",
		dtb:               "/usr/lib/linux-image-*-rpi/bcm*rpi-*.dtb",
		serial:            serialPL011,
		wirelessFirmware:  wirelessFirmware,
		bluetoothFirmware: bluetoothFirmware,
	},
	// The Pi 2 has no on-board radio.
	target.Version2: {
		arch:       "armhf",
		linuxImage: "linux-image-armmp",
		dtb:        "/usr/lib/linux-image-*-armmp/bcm*rpi*.dtb",
		serial:     serialPL011,
	},
	target.Version3: {
		arch:              "arm64",
		linuxImage:        "linux-image-arm64",
		dtb:               "/usr/lib/linux-image-*-arm64/broadcom/bcm*rpi*.dtb",
		serial:            serialMiniUART,
		wirelessFirmware:  wirelessFirmware,
		bluetoothFirmware: bluetoothFirmware,
	},
	target.Version4: {
		arch:              "arm64",
		linuxImage:        "linux-image-arm64",
		dtb:               "/usr/lib/linux-image-*-arm64/broadcom/bcm*rpi*.dtb",
		serial:            serialMiniUART,
		wirelessFirmware:  wirelessFirmware,
		bluetoothFirmware: bluetoothFirmware,
		extraChrootCmds:   []string{cmaFixup},
	},
}

// release holds everything derived from the suite alone.
type release struct {
	firmwareComponent    string
	firmwareComponentOld string
}

// Bookworm introduced the non-free-firmware component; raspi-firmware lived
// in non-free before that.
var releaseRules = map[target.Suite]release{
	target.SuiteBullseye: {
		firmwareComponent:    "non-free",
		firmwareComponentOld: "",
	},
	target.SuiteBookworm: {
		firmwareComponent:    "non-free-firmware",
		firmwareComponentOld: "non-free",
	},
	target.SuiteTrixie: {
		firmwareComponent:    "non-free-firmware",
		firmwareComponentOld: "non-free",
	},
}

// Values shared by every target.
const (
	hostnamePrefix   = "rpi_"
	systemdTimesyncd = "systemd-timesyncd"
	touchMachineID   = `echo "uninitialized" > /etc/machine-id`

	fixFirmwareCmd = "sed -i s/raspi-firmware/raspi3-firmware/ ${ROOT?}/etc/systemd/system/rpi-reconfigure-raspi-firmware.service"

	backportsMirror = "http://deb.debian.org/debian"
)
