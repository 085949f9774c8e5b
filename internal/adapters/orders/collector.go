package orders

import (
	"bufio"
	"fmt"
	"hub-allocation-service/internal/domain"
	"io"
	"strconv"
	"strings"
	"time"
)

// DefaultWeightKg is used when the weight prompt is left empty.
const DefaultWeightKg = 10

// Collector registers orders interactively: it asks how many orders to
// register, then a destination and a weight for each one, in batches until
// the user stops. Destinations are re-prompted until they are known keys.
type Collector struct {
	in    *bufio.Scanner
	out   io.Writer
	known map[string]struct{}
	now   func() time.Time
	seq   int
}

func NewCollector(in io.Reader, out io.Writer, destinations []string) *Collector {
	known := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		known[d] = struct{}{}
	}
	return &Collector{
		in:    bufio.NewScanner(in),
		out:   out,
		known: known,
		now:   time.Now,
	}
}

// Collect runs the prompt loop. A non-numeric or non-positive batch size ends
// it, as does end of input at the batch prompt. A malformed weight or end of
// input in the middle of an order is an error; orders registered before it
// are returned with it.
func (c *Collector) Collect() ([]domain.Order, error) {
	var out []domain.Order

	for {
		c.prompt("How many orders do you want to register? (0 to finish): ")
		line, ok := c.readLine()
		if !ok {
			return out, nil
		}
		qty, err := strconv.Atoi(line)
		if err != nil || qty <= 0 {
			return out, nil
		}

		for i := 0; i < qty; i++ {
			fmt.Fprintf(c.out, "\nOrder %d:\n", i+1)

			o, err := c.collectOne()
			if err != nil {
				return out, fmt.Errorf("collect order %d: %w", i+1, err)
			}
			out = append(out, o)
		}

		c.prompt("\nRegister more orders? (y/N): ")
		more, ok := c.readLine()
		if !ok {
			return out, nil
		}
		if !isYes(more) {
			return out, nil
		}
	}
}

func (c *Collector) collectOne() (domain.Order, error) {
	var dest string
	for {
		c.prompt("Destination: ")
		line, ok := c.readLine()
		if !ok {
			return domain.Order{}, io.ErrUnexpectedEOF
		}
		if _, known := c.known[line]; known {
			dest = line
			break
		}
		fmt.Fprintln(c.out, "Invalid destination. Try again.")
	}

	c.prompt("Cargo weight (kg): ")
	line, ok := c.readLine()
	if !ok {
		return domain.Order{}, io.ErrUnexpectedEOF
	}

	weight := float64(DefaultWeightKg)
	if line != "" {
		w, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", "."), 64)
		if err != nil {
			return domain.Order{}, fmt.Errorf("%w: %q", ErrInvalidWeight, line)
		}
		if !validWeight(w) {
			return domain.Order{}, fmt.Errorf("%w: %v", ErrInvalidWeight, w)
		}
		weight = w
	}

	c.seq++
	return domain.Order{
		ID:          fmt.Sprintf("E%03d", c.seq),
		Destination: dest,
		Deadline:    DefaultDeadline(c.now()),
		WeightKg:    weight,
	}, nil
}

func (c *Collector) prompt(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Collector) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func isYes(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
