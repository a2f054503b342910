package postgres

// SQL for the user, section and product stores.

const (
	userColumns = `id, name, email, auth_provider, messaging_tokens, created_at`

	sectionColumns = `id, user_id, name, created_at`

	productColumns = `
		id, user_id, section_id, name, image_url, image_source,
		expiration_date, consumed_at, is_on_time, last_notified, created_at
	`

	// queryInsertUser seeds the order list with the initial section.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	queryInsertUser = `
		INSERT INTO users (id, name, email, auth_provider, messaging_tokens, section_order, created_at)
		VALUES ($1, $2, $3, $4, $5, ARRAY[$6::text], $7)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	queryGetUser = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	queryGetUsers = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

	queryAddMessagingToken = `
		UPDATE users
		SET messaging_tokens = CASE
			WHEN $2 = ANY(messaging_tokens) THEN messaging_tokens
			ELSE array_append(messaging_tokens, $2)
		END
		WHERE id = $1
	`

	querySelectOrderForUpdate = `SELECT section_order FROM users WHERE id = $1 FOR UPDATE`

	querySelectOrder = `SELECT section_order FROM users WHERE id = $1`

	queryUpdateOrder = `UPDATE users SET section_order = $2 WHERE id = $1`

	queryInsertSection = `
		INSERT INTO sections (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	queryListSections = `SELECT ` + sectionColumns + ` FROM sections WHERE user_id = $1 ORDER BY name ASC, id ASC`

	queryGetSection = `SELECT ` + sectionColumns + ` FROM sections WHERE user_id = $1 AND id = $2`

	queryRenameSection = `UPDATE sections SET name = $3 WHERE user_id = $1 AND id = $2`

	// Products go with the section through ON DELETE CASCADE.
	queryDeleteSection = `DELETE FROM sections WHERE user_id = $1 AND id = $2`

	queryInsertProduct = `
		INSERT INTO products (
			id, user_id, section_id, name, image_url, image_source,
			expiration_date, consumed_at, is_on_time, last_notified, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	queryGetProduct = `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND section_id = $2 AND id = $3
	`

	queryUpdateProduct = `
		UPDATE products
		SET name = $4, image_url = $5, image_source = $6, expiration_date = $7, last_notified = $8
		WHERE user_id = $1 AND section_id = $2 AND id = $3
	`

	queryDeleteProduct = `DELETE FROM products WHERE user_id = $1 AND section_id = $2 AND id = $3`

	queryCompleteProduct = `
		UPDATE products
		SET consumed_at = $4, is_on_time = $5
		WHERE user_id = $1 AND section_id = $2 AND id = $3
	`

	// queryListProducts treats '' and NULL parameters as "no bound".
	queryListProducts = `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1
		  AND ($2 = '' OR section_id = $2)
		  AND ($3 OR consumed_at IS NULL)
		  AND ($4::timestamptz IS NULL OR expiration_date >= $4)
		  AND ($5::timestamptz IS NULL OR expiration_date <= $5)
		ORDER BY expiration_date ASC, created_at ASC
	`

	queryFindExpiring = `
		SELECT ` + productColumns + `
		FROM products
		WHERE consumed_at IS NULL
		  AND expiration_date >= $1
		  AND expiration_date <= $2
		  AND (last_notified IS NULL OR last_notified <= $3)
		ORDER BY expiration_date ASC, id ASC
	`

	queryMarkNotified = `
		UPDATE products
		SET last_notified = $4
		WHERE user_id = $1 AND section_id = $2 AND id = $3
	`
)
