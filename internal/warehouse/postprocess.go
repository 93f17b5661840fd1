package warehouse

import (
	"context"
	"fmt"
)

// MarkTransferred flags people who disappeared from both sources. A CPF
// known to the base dimension that shows up neither in the latest HR staging
// nor in the latest payroll staging, and that carries no dismissal date, is
// marked "Transferido"; its rich-dimension record is deactivated. Must run
// after the loads of the same batch, while their staging tables still exist.
// When either staging table is absent its load stage was skipped this run,
// so absence cannot be read as disappearance and the post-process is a no-op.
func (s *Store) MarkTransferred(ctx context.Context) error {
	for _, table := range []string{"staging_colaboradores", "stg_folha_consol"} {
		exists, err := s.stagingTableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			s.logger.Warn("staging table missing, skipping transferred post-process",
				"table", table)
			return nil
		}
	}

	sql := fmt.Sprintf(`
		UPDATE %[1]s
		SET situacao_csv = 'Transferido'
		WHERE cpf IN (
			SELECT base.cpf FROM %[1]s base
			LEFT JOIN %[2]s api ON base.cpf = api.cpf
			LEFT JOIN %[3]s csv ON base.cpf = csv.cpf
			WHERE api.cpf IS NULL AND csv.cpf IS NULL
			AND base.data_demissao_csv IS NULL
			AND base.situacao_csv NOT IN ('Transferido', 'Desligado')
		)`,
		s.qualify("dim_colaboradores_base"),
		s.qualify("staging_colaboradores"),
		s.qualify("stg_folha_consol"))

	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("marking transferred employees: %w", err)
	}

	deactivate := fmt.Sprintf(`
		UPDATE %[1]s
		SET ativo = FALSE, data_ultima_atualizacao = current_timestamp
		FROM %[2]s base
		WHERE %[1]s.colaborador_sk = base.colaborador_sk
		AND base.situacao_csv = 'Transferido'
		AND %[1]s.ativo = TRUE`,
		s.qualify("dim_colaboradores"),
		s.qualify("dim_colaboradores_base"))

	if _, err := s.db.Exec(ctx, deactivate); err != nil {
		return fmt.Errorf("deactivating transferred employees: %w", err)
	}

	s.logger.Info("transferred employees processed")
	return nil
}

func (s *Store) stagingTableExists(ctx context.Context, table string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM pg_tables WHERE schemaname = $1 AND tablename = $2)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, s.schema, table).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking staging table %s: %w", table, err)
	}
	return exists, nil
}
