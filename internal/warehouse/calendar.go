package warehouse

import (
	"context"
	"fmt"
)

// LoadCalendar fills dim_calendario for 2023 through 2030. Existing dates
// are left alone, so the load is safe to repeat. Day and month names come
// out in Portuguese when the pt_BR locale is installed; otherwise the
// server default applies.
func (s *Store) LoadCalendar(ctx context.Context) error {
	sql := fmt.Sprintf(`
	DO $$
	DECLARE
		data_inicio DATE := '2023-01-01';
		data_fim DATE := '2030-12-31';
	BEGIN
		BEGIN
			SET LOCAL lc_time = 'pt_BR.UTF-8';
		EXCEPTION WHEN OTHERS THEN
			BEGIN
				SET LOCAL lc_time = 'pt_BR';
			EXCEPTION WHEN OTHERS THEN
				RAISE NOTICE 'locale pt_BR unavailable';
			END;
		END;

		INSERT INTO %s (
			data, ano, mes, dia, trimestre, semestre,
			dia_da_semana, nome_dia_da_semana, nome_mes, nome_mes_abrev,
			ano_mes, dia_do_ano, semana_do_ano
		)
		SELECT
			d,
			EXTRACT(YEAR FROM d),
			EXTRACT(MONTH FROM d),
			EXTRACT(DAY FROM d),
			EXTRACT(QUARTER FROM d),
			CASE WHEN EXTRACT(MONTH FROM d) <= 6 THEN 1 ELSE 2 END,
			EXTRACT(DOW FROM d),
			to_char(d, 'TMDay'),
			to_char(d, 'TMMonth'),
			to_char(d, 'TMMon'),
			to_char(d, 'YYYY-MM'),
			EXTRACT(DOY FROM d),
			EXTRACT(WEEK FROM d)
		FROM generate_series(data_inicio, data_fim, '1 day'::interval) d
		ON CONFLICT (data) DO NOTHING;
	END $$;`, s.qualify("dim_calendario"))

	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("loading calendar dimension: %w", err)
	}
	s.logger.Info("calendar dimension loaded")
	return nil
}
