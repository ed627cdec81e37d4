package schema

// SchemaSQL contains the full database schema initialization script.
// cmd/setup executes it against a fresh database; the goose migrations under
// migrations/ carry the same statements for incremental deployments.
const SchemaSQL = `
-- Players

CREATE TABLE IF NOT EXISTS players (
    player_id UUID PRIMARY KEY,
    username VARCHAR(32) NOT NULL,
    instance_id BIGINT,
    pos_x REAL NOT NULL DEFAULT 0,
    pos_y REAL NOT NULL DEFAULT 0,
    pos_z REAL NOT NULL DEFAULT 100,
    rot_pitch REAL NOT NULL DEFAULT 0,
    rot_yaw REAL NOT NULL DEFAULT 0,
    rot_roll REAL NOT NULL DEFAULT 0,
    health REAL NOT NULL DEFAULT 100,
    max_health REAL NOT NULL DEFAULT 100,
    is_attacking BOOLEAN NOT NULL DEFAULT FALSE,
    is_online BOOLEAN NOT NULL DEFAULT FALSE,
    last_update TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Game Instances

CREATE TABLE IF NOT EXISTS game_instances (
    instance_id BIGSERIAL PRIMARY KEY,
    name VARCHAR(64) NOT NULL,
    max_players INTEGER NOT NULL CHECK (max_players BETWEEN 1 AND 16),
    current_players INTEGER NOT NULL DEFAULT 0 CHECK (current_players >= 0),
    state VARCHAR(20) NOT NULL DEFAULT 'lobby',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    owner_id UUID NOT NULL REFERENCES players(player_id)
);

-- Item Catalog

CREATE TABLE IF NOT EXISTS item_definitions (
    item_id VARCHAR(100) PRIMARY KEY,
    display_name VARCHAR(100) NOT NULL,
    item_description TEXT NOT NULL DEFAULT '',
    category VARCHAR(20) NOT NULL,
    max_stack INTEGER NOT NULL CHECK (max_stack >= 1),
    is_premium BOOLEAN NOT NULL DEFAULT FALSE,
    premium_price BIGINT NOT NULL DEFAULT 0 CHECK (premium_price >= 0),
    is_exclusive BOOLEAN NOT NULL DEFAULT FALSE,
    rarity VARCHAR(20) NOT NULL DEFAULT 'common',
    heal_amount REAL NOT NULL DEFAULT 0
);

-- Inventory
-- Slot uniqueness per owner is enforced at write time under row locks,
-- not by a unique constraint.

CREATE TABLE IF NOT EXISTS inventory_entries (
    entry_id BIGSERIAL PRIMARY KEY,
    owner_id UUID NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    item_id VARCHAR(100) NOT NULL REFERENCES item_definitions(item_id),
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    slot_index INTEGER NOT NULL CHECK (slot_index >= 0 AND slot_index < 100)
);

CREATE INDEX IF NOT EXISTS idx_inventory_entries_owner ON inventory_entries(owner_id);

-- Premium Economy

CREATE TABLE IF NOT EXISTS wallets (
    owner_id UUID PRIMARY KEY REFERENCES players(player_id) ON DELETE CASCADE,
    balance BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
    lifetime_purchased BIGINT NOT NULL DEFAULT 0 CHECK (lifetime_purchased >= 0),
    last_purchase_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS transactions (
    transaction_id BIGSERIAL PRIMARY KEY,
    actor_id UUID NOT NULL,
    item_id VARCHAR(100) REFERENCES item_definitions(item_id),
    amount BIGINT NOT NULL,
    kind VARCHAR(20) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    receipt_ref VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_transactions_actor ON transactions(actor_id);

CREATE TABLE IF NOT EXISTS ownership_records (
    ownership_id BIGSERIAL PRIMARY KEY,
    owner_id UUID NOT NULL REFERENCES players(player_id),
    item_id VARCHAR(100) NOT NULL REFERENCES item_definitions(item_id),
    acquired_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    transaction_id BIGINT NOT NULL REFERENCES transactions(transaction_id),
    is_gift BOOLEAN NOT NULL DEFAULT FALSE,
    gifter_id UUID
);

CREATE INDEX IF NOT EXISTS idx_ownership_owner_item ON ownership_records(owner_id, item_id);

-- World Items & Interactables

CREATE TABLE IF NOT EXISTS world_items (
    world_item_id BIGSERIAL PRIMARY KEY,
    instance_id BIGINT NOT NULL REFERENCES game_instances(instance_id) ON DELETE CASCADE,
    item_id VARCHAR(100) NOT NULL REFERENCES item_definitions(item_id),
    quantity INTEGER NOT NULL CHECK (quantity >= 1),
    pos_x REAL NOT NULL DEFAULT 0,
    pos_y REAL NOT NULL DEFAULT 0,
    pos_z REAL NOT NULL DEFAULT 0,
    is_collected BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS interactables (
    interactable_id BIGSERIAL PRIMARY KEY,
    instance_id BIGINT NOT NULL REFERENCES game_instances(instance_id) ON DELETE CASCADE,
    kind VARCHAR(50) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT FALSE
);
`
