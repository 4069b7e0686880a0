package redis

import "fmt"

// categoriesKey returns the Redis key for the SET of category names
func categoriesKey(prefix string) string {
	return fmt.Sprintf("%s:categories", prefix)
}

// categoryKey returns the Redis key for the LIST of words in a category
func categoryKey(prefix, category string) string {
	return fmt.Sprintf("%s:category:%s", prefix, category)
}
