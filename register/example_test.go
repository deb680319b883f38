package register_test

import (
	"fmt"

	"github.com/sivalab/sival/register"
)

// ExampleRegister packs a UART control register and reads it back field by
// field: [15:4] baud divisor, [3:2] parity mode, [1] stop bits, [0] enable.
func ExampleRegister() {
	ctrl, _ := register.New("UART_CTRL", 16)
	_ = ctrl.InsertField(4, 12, 104) // 115200 baud at 12 MHz
	_ = ctrl.InsertField(2, 2, 0b01) // odd parity
	_ = ctrl.SetBit(0)               // enable

	baud, _ := ctrl.ExtractField(4, 12)
	fmt.Printf("baud divisor: %d\n", baud)
	fmt.Printf("register:     %s\n", ctrl.BinaryString(4))
	// Output:
	// baud divisor: 104
	// register:     0000 0110 1000 0101
}

// ExampleRegister_watch traps the moment an error bit is raised.
func ExampleRegister_watch() {
	status, _ := register.New("DMA_STATUS", 32)
	status.SetWatchFunc(func(name string, pos uint, old, now bool) {
		fmt.Printf("%s bit %d: %v -> %v\n", name, pos, old, now)
	})
	_ = status.Watch(31) // error summary bit

	_ = status.SetBit(0)  // silent, unwatched
	_ = status.SetBit(31) // fires
	// Output:
	// DMA_STATUS bit 31: false -> true
}
