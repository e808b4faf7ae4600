package main

import (
	"encoding/json"
	"fmt"
)

func printJSON(value any) error {
	out, errMarshal := json.MarshalIndent(value, "", "  ")
	if errMarshal != nil {
		return errMarshal
	}
	fmt.Println(string(out))
	return nil
}
