package shared

import "fmt"

// DuesGenerationLockKey builds the redis key guarding a fee generation run
// for one period, e.g. billing:dues:2024-06:lock.
func DuesGenerationLockKey(period string) string {
	return fmt.Sprintf("billing:dues:%s:lock", period)
}
