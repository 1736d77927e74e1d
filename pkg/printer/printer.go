package printer

import (
	"fmt"
	"net"
	"time"

	"go.bug.st/serial"
)

// Printer sends raw ESC/POS data to a thermal receipt printer.
type Printer interface {
	// Print sends raw ESC/POS bytes to the printer.
	Print(data []byte) error
	// Close releases the printer connection/handle.
	Close() error
	// IsConnected returns true if the printer can currently be reached.
	IsConnected() bool
}

// --- Serial printer (e.g. /dev/ttyUSB0 at 9600 baud) ---

type serialPrinter struct {
	portName string
	baudRate int
}

// NewSerialPrinter creates a printer that writes to a serial port.
// The port is opened per print job and always closed when the job ends.
func NewSerialPrinter(portName string, baudRate int) Printer {
	if baudRate <= 0 {
		baudRate = 9600
	}
	return &serialPrinter{portName: portName, baudRate: baudRate}
}

func (p *serialPrinter) Print(data []byte) (err error) {
	port, err := serial.Open(p.portName, &serial.Mode{BaudRate: p.baudRate})
	if err != nil {
		return fmt.Errorf("printer: failed to open serial port %s: %w", p.portName, err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("printer: failed to close serial port %s: %w", p.portName, cerr)
		}
	}()

	// Sequential write; Drain blocks until the device has taken all bytes
	// so the port is never closed mid-stream.
	if _, err := port.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to serial port %s: %w", p.portName, err)
	}
	if err := port.Drain(); err != nil {
		return fmt.Errorf("printer: failed to drain serial port %s: %w", p.portName, err)
	}
	return nil
}

func (p *serialPrinter) Close() error {
	return nil // port is opened/closed per print job
}

func (p *serialPrinter) IsConnected() bool {
	ports, err := serial.GetPortsList()
	if err != nil {
		return false
	}
	for _, name := range ports {
		if name == p.portName {
			return true
		}
	}
	return false
}

// --- Network printer (dials TCP, e.g. 192.168.1.100:9100) ---

type networkPrinter struct {
	address string
	timeout time.Duration
}

// NewNetworkPrinter creates a printer that connects via TCP. Address
// must include the port, e.g. "192.168.1.100:9100".
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address: address,
		timeout: 5 * time.Second,
	}
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Close() error {
	return nil // connection is opened/closed per print job
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, 2*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// --- Null printer (no-op, used when no printer is configured) ---

type nullPrinter struct{}

// NewNullPrinter creates a no-op printer for environments without
// hardware attached.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error { return nil }
func (p *nullPrinter) Close() error            { return nil }
func (p *nullPrinter) IsConnected() bool       { return false }

// NewPrinterFromConfig creates the appropriate Printer based on type.
//
//	printerType: "serial", "network", or "none"
//	serialPort:  port name for serial printers (e.g. "/dev/ttyUSB0")
//	baudRate:    serial baud rate, 9600 when zero
//	address:     TCP address for network printers (e.g. "192.168.1.100:9100")
func NewPrinterFromConfig(printerType, serialPort string, baudRate int, address string) (Printer, error) {
	switch printerType {
	case "serial":
		if serialPort == "" {
			return nil, fmt.Errorf("printer: serial port is required for serial printer type")
		}
		return NewSerialPrinter(serialPort, baudRate), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use serial, network, or none)", printerType)
	}
}
