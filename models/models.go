package models

// All lists every model owned by the schema, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Plant{},
		&CartOrder{},
		&AdminRequest{},
		&Admin{},
	}
}
