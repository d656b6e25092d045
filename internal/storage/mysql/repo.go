package mysql

import (
	"context"
	"database/sql"
	"time"

	"hostbot/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valIntent(p *domain.Intent) any {
	if p == nil {
		return nil
	}
	return string(*p)
}

func valTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) LogAction(ctx context.Context, a domain.Action) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertActionSQL,
		string(a.Kind),
		a.GuestName,
		valStr(a.Property),
		valIntent(a.Intent),
		a.Urgent,
		valStr(a.Subject),
		a.Body,
		valTime(a.CreatedAt),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) ListActions(ctx context.Context, q domain.ActionsQuery) (domain.ActionsPage, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if q.Kind != nil {
		rows, err = r.db.QueryContext(ctx, listActionsByKindSQL, string(*q.Kind), q.Limit)
	} else {
		rows, err = r.db.QueryContext(ctx, listActionsSQL, q.Limit)
	}
	if err != nil {
		return domain.ActionsPage{}, err
	}
	defer rows.Close()

	var out []domain.Action
	for rows.Next() {
		var a domain.Action
		var (
			kind                      string
			property, intent, subject sql.NullString
		)
		if err := rows.Scan(
			&a.ID,
			&kind,
			&a.GuestName,
			&property,
			&intent,
			&a.Urgent,
			&subject,
			&a.Body,
			&a.CreatedAt,
		); err != nil {
			return domain.ActionsPage{}, err
		}
		a.Kind = domain.ActionKind(kind)
		if property.Valid {
			s := property.String
			a.Property = &s
		}
		if intent.Valid {
			i := domain.Intent(intent.String)
			a.Intent = &i
		}
		if subject.Valid {
			s := subject.String
			a.Subject = &s
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return domain.ActionsPage{}, err
	}
	return domain.ActionsPage{Items: out}, nil
}
