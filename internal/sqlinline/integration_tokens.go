package sqlinline

const QSelectIntegrationToken = `--sql 6a00b026-135e-4f6a-86be-270ec43fe632
select token
from integration_tokens
where provider = $1
limit 1;
`

const QUpsertIntegrationToken = `--sql 06f7231e-5dad-40ae-8736-65e38b12108e
insert into integration_tokens (provider, token, properties, created_at, updated_at)
values ($1, $2, $3, now(), now())
on conflict (provider) do update set
    token = excluded.token,
    properties = excluded.properties,
    updated_at = now();
`
