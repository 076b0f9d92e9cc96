package routine

import "fmt"

// CountLabel renders "0 tasks", "1 task", "N tasks".
func CountLabel(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
